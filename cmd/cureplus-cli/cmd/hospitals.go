package cmd

import (
	"fmt"

	"github.com/cureplus/website/cmd/cureplus-cli/internal/output"
	"github.com/cureplus/website/internal/domain"
	"github.com/spf13/cobra"
)

func newHospitalsCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "hospitals",
		Short: "List all registered hospitals",
		Long: `List every hospital in the registry in id order, with its public slug,
public path and internal path.

Examples:
  cureplus-cli hospitals                 # table format
  cureplus-cli hospitals --format json   # JSON format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			rows := make([]output.HospitalRow, 0, c.Len())
			for _, s := range c.Hospitals() {
				slug, err := c.Slug(s.ID)
				if err != nil {
					return err
				}
				rows = append(rows, output.HospitalRow{
					ID:           s.ID,
					Slug:         slug,
					Name:         s.Name,
					PublicPath:   domain.PublicPath(slug),
					InternalPath: domain.InternalPath(s.ID),
				})
			}

			w := cmd.OutOrStdout()
			switch format {
			case "table":
				return output.HospitalsTable(w, rows)
			case "json":
				return output.JSON(w, struct {
					Hospitals []output.HospitalRow `json:"hospitals"`
					Count     int                  `json:"count"`
				}{rows, len(rows)})
			default:
				return fmt.Errorf("unsupported output format %q, use table or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
