package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "expansion",
		Short:         "Painel de expansão: API, reconciliação e importação de cidades",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newReconcileCmd(), newImportCmd())
	return root
}

// Execute runs the command line with "serve" as the default command.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	if len(args) == 0 {
		args = []string{"serve"}
	}
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
