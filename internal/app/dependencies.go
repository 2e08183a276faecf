package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cureplus/website/internal/assets"
	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/config"
	"github.com/cureplus/website/internal/rendering"
	"github.com/cureplus/website/internal/view"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewInjector creates the root injector holding the core services that the
// server and the modules depend on. fs is the filesystem the dataset
// override and the asset directory are read from; production passes
// afero.NewOsFs().
func NewInjector(cfg config.Provider, fs afero.Fs) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)
	do.Provide(i, provideStore)
	do.Provide(i, provideAssets)
	do.Provide(i, provideRenderer)
	return i
}

// provideStore loads the hospital dataset: the override file when
// HOSPITAL_DATA_PATH is set, the embedded dataset otherwise.
func provideStore(i do.Injector) (*catalog.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	loader := catalog.NewLoader(do.MustInvoke[afero.Fs](i))

	path := cfg.GetDataPath()
	if path == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded embedded hospital dataset", "hospitals", c.Len())
		return catalog.NewStore(c, loader), nil
	}

	c, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded hospital dataset", "path", path, "hospitals", c.Len())
	return catalog.NewStore(c, loader), nil
}

// provideAssets builds the image resolver. With verification on and no
// images in the asset directory every picture is omitted, so that case is
// logged at startup.
func provideAssets(i do.Injector) (view.AssetResolver, error) {
	cfg := do.MustInvoke[config.Provider](i)
	root := afero.NewBasePathFs(do.MustInvoke[afero.Fs](i), cfg.GetAssetDir())
	if cfg.GetAssetCheck() && !hasFiles(root) {
		slog.Warn("Asset directory has no images; hospital pictures will be omitted",
			"asset_dir", cfg.GetAssetDir(),
			"hint", "copy the image set into ASSET_DIR or set ASSET_CHECK=false")
	}
	return assets.NewResolver(root, assets.DefaultPrefix, cfg.GetAssetCheck()), nil
}

// hasFiles reports whether fs holds at least one regular, non-hidden file.
func hasFiles(fs afero.Fs) bool {
	found := false
	_ = afero.Walk(fs, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return filepath.SkipDir
		}
		if info.Mode().IsRegular() && !strings.HasPrefix(info.Name(), ".") {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}
