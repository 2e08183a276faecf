package assets

import (
	"net/url"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// DefaultPrefix is the URL prefix that static hospital images are served under.
const DefaultPrefix = "/assets"

// Resolver turns dataset image paths into public URLs. When verification is
// on, paths that do not exist on the filesystem are reported as missing so
// views can omit the image instead of rendering a broken reference.
type Resolver struct {
	fs     afero.Fs
	prefix string
	verify bool
}

// NewResolver creates a Resolver over fs, which should be rooted at the
// asset directory (see afero.NewBasePathFs).
func NewResolver(fs afero.Fs, prefix string, verify bool) *Resolver {
	return &Resolver{fs: fs, prefix: strings.TrimSuffix(prefix, "/"), verify: verify}
}

// Resolve returns the URL for p and whether it should be rendered.
func (r *Resolver) Resolve(p string) (string, bool) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", false
	}
	if u, err := url.Parse(p); err == nil && u.IsAbs() {
		return p, true
	}

	clean := path.Clean("/" + p)
	if r.verify {
		info, err := r.fs.Stat(clean)
		if err != nil || info.IsDir() {
			return "", false
		}
	}
	return r.prefix + escapePath(clean), true
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
