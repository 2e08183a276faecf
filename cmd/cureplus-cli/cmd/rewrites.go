package cmd

import (
	"fmt"

	"github.com/cureplus/website/cmd/cureplus-cli/internal/output"
	"github.com/spf13/cobra"
)

func newRewritesCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rewrites",
		Short: "Print the rewrite table",
		Long: `Print the table that serves each public hospital path from its internal
/hospital/{id} path. The table is derived from the registry, one row per
hospital in ascending id order.

Output formats:
  table - Human-readable table format (default)
  json  - {"rewrites": [{"source": ..., "destination": ...}]}
  yaml  - The same document as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			rewrites := c.Rewrites()
			w := cmd.OutOrStdout()
			switch format {
			case "table":
				return output.RewritesTable(w, rewrites)
			case "json":
				return output.JSON(w, output.RewriteDocument{Rewrites: rewrites})
			case "yaml":
				return output.YAML(w, output.RewriteDocument{Rewrites: rewrites})
			default:
				return fmt.Errorf("unsupported output format %q, use table, json or yaml", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}
