package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"masquerade/application/wiring"
	"masquerade/infrastructure/components"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List registered component contracts",
	Long: `Lists every contract the wiring context can resolve, after the
built-in components and the registered providers are loaded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := wiring.New(nil, components.DefaultConfig{}, wiring.WithLogger(newLogger(cmd.ErrOrStderr())))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, t := range c.Registry().Types() {
			fmt.Fprintf(out, "%-16s %s\n", t.Name(), t.PkgPath())
		}
		if providers := wiring.Providers(); len(providers) > 0 {
			fmt.Fprintf(out, "\nproviders: %v\n", providers)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}
