package catalog

import (
	"fmt"

	"github.com/spf13/afero"
)

// Loader reads datasets from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader over fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads, validates and indexes the dataset at path.
func (l *Loader) Load(path string) (*Catalog, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read hospital dataset %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default loads the dataset embedded in the binary.
func Default() (*Catalog, error) {
	return NewLoader(afero.FromIOFS{FS: DataFS}).Load(DefaultDataFile)
}

// MustDefault is Default for program startup and tests; it panics when the
// embedded dataset is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
