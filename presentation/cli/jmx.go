package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"masquerade/domain/entities"
	"masquerade/infrastructure/connector"
)

var jmxAttribute bool

var jmxCmd = &cobra.Command{
	Use:   "jmx <object-name> <operation> [args...]",
	Short: "Call a JMX operation through Jolokia",
	Long: `Executes one operation of an MBean and prints the JSON result. With
--attribute the operation names an attribute: no argument reads it, one
argument writes it.

Examples:
  masquerade jmx app-core.cuba:type=ConfigStorage printAppProperties cuba.web
  masquerade jmx app-core.cuba:type=CachingFacade --attribute ConfigStorageCacheSize`,
	Args: cobra.MinimumNArgs(2),
	RunE: runJmx,
}

func init() {
	rootCmd.AddCommand(jmxCmd)
	jmxCmd.Flags().BoolVar(&jmxAttribute, "attribute", false, "read or write an attribute")
}

func runJmx(cmd *cobra.Command, args []string) error {
	op, err := jmxOperation(args[1], args[2:])
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr())
	connectors := connector.New(append(cfg.ConnectorOptions(), connector.WithLogger(log))...)
	handler := connectors.Handler(args[0])
	log.WithField("mbean", args[0]).Debugf("JMX %s %s", op.Kind, op.Name)

	value, err := handler.Invoke(cmd.Context(), op)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(value))
	return nil
}

func jmxOperation(name string, raw []string) (entities.RemoteOperation, error) {
	args := make([]any, 0, len(raw))
	for _, a := range raw {
		args = append(args, a)
	}

	if !jmxAttribute {
		return entities.RemoteOperation{Kind: entities.RemoteExec, Name: name, Args: args}, nil
	}
	switch len(args) {
	case 0:
		return entities.RemoteOperation{Kind: entities.RemoteRead, Name: name}, nil
	case 1:
		return entities.RemoteOperation{Kind: entities.RemoteWrite, Name: name, Args: args}, nil
	}
	return entities.RemoteOperation{}, fmt.Errorf("attribute %s takes no or one value, got %d", name, len(args))
}
