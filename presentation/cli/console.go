package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"masquerade/application/wiring"
	"masquerade/domain/interfaces"
	"masquerade/infrastructure/browser"
	"masquerade/infrastructure/components"
	"masquerade/infrastructure/config"
	"masquerade/infrastructure/storage"
	"masquerade/presentation/terminal"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console",
	Long: `Starts a browser and reads commands:

  open [url]
  wire <Contract> [path...]
  call <Operation> [args...]
  components
  history
  quit

Examples:
  masquerade console --driver selenium
  masquerade console --headless`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, _ []string) error {
	log := newLogger(cmd.ErrOrStderr())

	state, err := storage.NewBrowserState(cfg.StateDir)
	if err != nil {
		return err
	}

	b, err := openBrowser(state, log)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}

	c, err := wiring.New(b, components.DefaultConfig{}, wiring.WithLogger(log))
	if err != nil {
		_ = b.Close()
		return err
	}

	term := terminal.NewTerminalInterface(b, c,
		terminal.WithState(state),
		terminal.WithBaseURL(cfg.BaseURL),
		terminal.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
	)
	defer term.Close()

	return term.Run()
}

func openBrowser(state *storage.BrowserState, log logrus.FieldLogger) (interfaces.Browser, error) {
	opts := browser.DefaultOptions()
	opts.Headless = cfg.Headless
	opts.Timeout = cfg.Timeout
	opts.State = state
	opts.Logger = log

	if cfg.Driver == config.DriverSelenium {
		return browser.NewSeleniumDriver(opts)
	}
	return browser.NewPlaywrightDriver(opts)
}
