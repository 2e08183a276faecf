package cmd

import (
	"os"

	"github.com/cureplus/website/internal/catalog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options are shared by every subcommand.
type options struct {
	fs       afero.Fs
	dataPath string
}

// loadCatalog returns the --data override when set, the embedded dataset
// otherwise.
func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.dataPath == "" {
		return catalog.Default()
	}
	return catalog.NewLoader(o.fs).Load(o.dataPath)
}

// NewRootCmd builds the command tree. fs is where --data and validate read
// dataset files from.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "cureplus-cli",
		Short: "CurePlus hospital registry tool",
		Long: `cureplus-cli inspects the hospital registry that the CurePlus site is built from.

Available commands:
  hospitals    List every hospital with its slug and paths
  rewrites     Print the public path to internal path rewrite table
  resolve      Resolve a slug, id or path to its hospital
  validate     Check a dataset file against the registry rules
  slugify      Turn a hospital name into a URL-safe slug

Use "cureplus-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "Dataset file to use instead of the embedded one")

	rootCmd.AddCommand(
		newHospitalsCmd(opts),
		newRewritesCmd(opts),
		newResolveCmd(opts),
		newValidateCmd(opts),
		newSlugifyCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
