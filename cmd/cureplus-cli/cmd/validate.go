package cmd

import (
	"errors"
	"fmt"

	"github.com/cureplus/website/internal/catalog"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a hospital dataset",
		Long: `Validate a dataset file: required fields, URL-safe unique slugs and
ids numbered 1..N. Without a file argument the --data file, or else the
embedded dataset, is checked. Every problem is reported, not just the first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   *catalog.Catalog
				err error
			)
			source := "embedded dataset"
			switch {
			case len(args) == 1:
				source = args[0]
				c, err = catalog.NewLoader(opts.fs).Load(args[0])
			default:
				if opts.dataPath != "" {
					source = opts.dataPath
				}
				c, err = opts.loadCatalog()
			}

			if err != nil {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "%s is invalid:\n", source)
				for _, e := range flatten(err) {
					fmt.Fprintf(w, "  - %v\n", e)
				}
				return fmt.Errorf("validation failed")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d hospitals, %d rewrites\n", source, c.Len(), len(c.Rewrites()))
			return nil
		},
	}
}

// flatten unwraps the errors.Join tree inside err into its leaves.
func flatten(err error) []error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}
