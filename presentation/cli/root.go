// Package cli is the masquerade command line
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"masquerade/infrastructure/config"
	"masquerade/infrastructure/tracing"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	settings *viper.Viper
	tracer   *tracing.Provider
)

var rootCmd = &cobra.Command{
	Use:   "masquerade",
	Short: "Typed page objects for CUBA and Vaadin UIs",
	Long: `masquerade wires typed UI components from cuba-id locators, drives them
through playwright or selenium and logs every user-visible action.

Without a subcommand it starts the interactive console.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  loadConfig,
	PersistentPostRunE: shutdownTracing,
	RunE:               runConsole,
}

func init() {
	settings = config.New()

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	flags.String("driver", config.DriverPlaywright, "browser driver: playwright or selenium")
	flags.Bool("headless", false, "run the browser without a window")
	flags.String("log-level", "info", "log level")
	flags.Bool("trace", false, "export spans of component calls to stderr")

	_ = settings.BindPFlag("driver", flags.Lookup("driver"))
	_ = settings.BindPFlag("headless", flags.Lookup("headless"))
	_ = settings.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = settings.BindPFlag("trace", flags.Lookup("trace"))
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(settings, cfgFile)
	if err != nil {
		return err
	}

	tracer, err = tracing.Setup(cfg.Trace, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	return nil
}

func shutdownTracing(cmd *cobra.Command, _ []string) error {
	if tracer == nil {
		return nil
	}
	return tracer.Shutdown(context.Background())
}

// newLogger creates the process logger
func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
