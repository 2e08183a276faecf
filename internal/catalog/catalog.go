package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cureplus/website/internal/domain"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Catalog is an immutable, indexed snapshot of the hospital dataset. It is
// built once and never mutated; every accessor hands out copies.
type Catalog struct {
	network   domain.Network
	summaries []domain.HospitalSummary
	details   map[int]domain.HospitalDetail
	slugByID  map[int]string
	idBySlug  map[string]int
	rewrites  []domain.Rewrite
}

// Parse decodes, validates and indexes a YAML dataset.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode hospital dataset: %w", err)
	}
	return New(doc)
}

// New validates doc and builds a Catalog from it.
func New(doc Document) (*Catalog, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	records := slices.Clone(doc.Hospitals)
	slices.SortFunc(records, func(a, b Record) int { return a.ID - b.ID })

	c := &Catalog{
		network:   doc.Network,
		summaries: make([]domain.HospitalSummary, 0, len(records)),
		details:   make(map[int]domain.HospitalDetail, len(records)),
		slugByID:  make(map[int]string, len(records)),
		idBySlug:  make(map[string]int, len(records)),
		rewrites:  make([]domain.Rewrite, 0, len(records)),
	}
	for _, r := range records {
		c.summaries = append(c.summaries, r.Summary())
		c.details[r.ID] = r.HospitalDetail.Normalized()
		c.slugByID[r.ID] = r.Slug
		c.idBySlug[r.Slug] = r.ID
		c.rewrites = append(c.rewrites, domain.Rewrite{
			Source:      domain.PublicPath(r.Slug),
			Destination: domain.InternalPath(r.ID),
		})
	}
	return c, nil
}

// Network returns the organization content.
func (c *Catalog) Network() domain.Network {
	n := c.network
	n.Overview = slices.Clone(n.Overview)
	n.Pillars = slices.Clone(n.Pillars)
	n.ValueProps = slices.Clone(n.ValueProps)
	return n
}

// Hospitals returns every hospital summary in ascending id order.
func (c *Catalog) Hospitals() []domain.HospitalSummary {
	return slices.Clone(c.summaries)
}

// Len is the number of hospitals in the registry.
func (c *Catalog) Len() int {
	return len(c.summaries)
}

// Mappings returns the id to slug associations in ascending id order.
func (c *Catalog) Mappings() []domain.SlugMapping {
	out := make([]domain.SlugMapping, 0, len(c.summaries))
	for _, s := range c.summaries {
		out = append(out, domain.SlugMapping{ID: s.ID, Slug: c.slugByID[s.ID]})
	}
	return out
}

// Rewrites returns the public path to internal path table, one row per
// hospital in ascending id order.
func (c *Catalog) Rewrites() []domain.Rewrite {
	return slices.Clone(c.rewrites)
}

// Slug returns the public slug of id.
func (c *Catalog) Slug(id int) (string, error) {
	slug, ok := c.slugByID[id]
	if !ok {
		return "", domain.IDNotFound(id)
	}
	return slug, nil
}

// PublicPath returns "/{slug}" for id, or "#" when the id is unregistered so
// templates can always emit a link.
func (c *Catalog) PublicPath(id int) string {
	slug, err := c.Slug(id)
	if err != nil {
		return "#"
	}
	return domain.PublicPath(slug)
}

// ResolveSlug returns the id registered for slug. Matching ignores case and
// surrounding whitespace.
func (c *Catalog) ResolveSlug(slug string) (int, error) {
	id, ok := c.idBySlug[normalizeSlug(slug)]
	if !ok {
		return 0, domain.SlugNotFound(slug)
	}
	return id, nil
}

// Resolve accepts either a registered slug or a decimal hospital id, as
// found in the /hospital/{slug-or-id} route, and returns the id. Only the
// canonical spelling of an id is accepted: "01", "+1" and " 1" are not ids.
func (c *Catalog) Resolve(key string) (int, error) {
	if id, err := strconv.Atoi(key); err == nil && strconv.Itoa(id) == key {
		if _, ok := c.details[id]; !ok {
			return 0, domain.IDNotFound(id)
		}
		return id, nil
	}
	return c.ResolveSlug(key)
}

// Detail returns the full record for id.
func (c *Catalog) Detail(id int) (domain.HospitalDetail, error) {
	d, ok := c.details[id]
	if !ok {
		return domain.HospitalDetail{}, domain.IDNotFound(id)
	}
	return d.Normalized(), nil
}

// DetailBySlug returns the full record registered under slug.
func (c *Catalog) DetailBySlug(slug string) (domain.HospitalDetail, error) {
	id, err := c.ResolveSlug(slug)
	if err != nil {
		return domain.HospitalDetail{}, err
	}
	return c.Detail(id)
}

// Lookup resolves a slug-or-id key and returns its record.
func (c *Catalog) Lookup(key string) (domain.HospitalDetail, error) {
	id, err := c.Resolve(key)
	if err != nil {
		return domain.HospitalDetail{}, err
	}
	return c.Detail(id)
}

// normalizeSlug folds case with a fresh Caser per call; Casers carry state
// and must not be shared between goroutines.
func normalizeSlug(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
