package cmd

import (
	"fmt"
	"strings"

	"github.com/cureplus/website/internal/domain"
	"github.com/spf13/cobra"
)

func newSlugifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slugify <name>...",
		Short: "Turn a hospital name into a URL-safe slug",
		Example: `  cureplus-cli slugify "CurePlus Hospital, T. Narasipura"
  cureplus-hospital-t-narasipura`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := domain.Slugify(strings.Join(args, " "))
			if slug == "" {
				return fmt.Errorf("%q has no characters usable in a slug", strings.Join(args, " "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}
}
