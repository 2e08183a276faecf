package cmd

import (
	"fmt"
	"strings"

	"github.com/cureplus/website/internal/domain"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <slug|id|path>",
		Short: "Resolve a hospital key",
		Long: `Resolve a public slug, a numeric id, a public path (/cureplus-disha-hospital)
or an internal path (/hospital/1) to its hospital.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			key := strings.TrimPrefix(strings.TrimPrefix(args[0], "/hospital/"), "/")
			detail, err := c.Lookup(key)
			if err != nil {
				return err
			}
			slug, err := c.Slug(detail.ID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "id:       %d\n", detail.ID)
			fmt.Fprintf(w, "name:     %s\n", detail.Name)
			fmt.Fprintf(w, "slug:     %s\n", slug)
			fmt.Fprintf(w, "public:   %s\n", domain.PublicPath(slug))
			fmt.Fprintf(w, "internal: %s\n", domain.InternalPath(detail.ID))
			return nil
		},
	}
}
