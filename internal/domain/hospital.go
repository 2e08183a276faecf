package domain

import (
	"fmt"
	"slices"
)

// HospitalSummary is the short form of a hospital used by listings such as the
// about page grid and the network sidebar.
type HospitalSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// SlugMapping associates a hospital id with its public URL slug.
type SlugMapping struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
}

// Service is a single medical service offered by a hospital.
type Service struct {
	Label string `yaml:"label" json:"label" validate:"required"`
}

// Facility is an on-site amenity. Icon is an optional icon key, e.g. "FaWifi".
type Facility struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// SEO holds the optional search metadata of a detail page.
type SEO struct {
	H1       string   `yaml:"h1,omitempty" json:"h1,omitempty"`
	AltTexts []string `yaml:"altTexts,omitempty" json:"altTexts,omitempty"`
}

// Contact holds the optional contact block of a hospital.
type Contact struct {
	Address      string `yaml:"address,omitempty" json:"address,omitempty"`
	Phone        string `yaml:"phone,omitempty" json:"phone,omitempty"`
	GoogleMapURL string `yaml:"googleMapUrl,omitempty" json:"googleMapUrl,omitempty" validate:"omitempty,url"`
	EmbedMapURL  string `yaml:"embedMapUrl,omitempty" json:"embedMapUrl,omitempty" validate:"omitempty,url"`
}

// HospitalDetail is the full record rendered on a hospital's own page.
// Every field except ID and Name is optional; consumers resolve fallbacks
// through the view package rather than inline.
type HospitalDetail struct {
	ID             int        `yaml:"id" json:"id" validate:"gt=0"`
	Name           string     `yaml:"name" json:"name" validate:"required"`
	Location       string     `yaml:"location,omitempty" json:"location,omitempty"`
	Description    string     `yaml:"description,omitempty" json:"description,omitempty"`
	ImageURL       string     `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Specialists    string     `yaml:"specialists,omitempty" json:"specialists,omitempty"`
	Beds           string     `yaml:"beds,omitempty" json:"beds,omitempty"`
	Infrastructure string     `yaml:"infrastructure,omitempty" json:"infrastructure,omitempty"`
	Services       []Service  `yaml:"services,omitempty" json:"services" validate:"dive"`
	Facilities     []Facility `yaml:"facilities,omitempty" json:"facilities" validate:"dive"`
	Departments    []string   `yaml:"departments,omitempty" json:"departments" validate:"dive,required"`
	Gallery        []string   `yaml:"gallery,omitempty" json:"gallery" validate:"dive,required"`
	SEO            SEO        `yaml:"seo,omitempty" json:"seo"`
	Contact        Contact    `yaml:"contact,omitempty" json:"contact"`
}

// Normalized returns a deep copy of d whose list fields are non-nil, so
// callers can range over them without checks.
func (d HospitalDetail) Normalized() HospitalDetail {
	out := d
	out.Services = cloneOrEmpty(d.Services)
	out.Facilities = cloneOrEmpty(d.Facilities)
	out.Departments = cloneOrEmpty(d.Departments)
	out.Gallery = cloneOrEmpty(d.Gallery)
	out.SEO.AltTexts = cloneOrEmpty(d.SEO.AltTexts)
	return out
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

// Rewrite is one row of the site routing table: requests for Source are
// served from Destination.
type Rewrite struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// InternalPath is the canonical detail route of a hospital id.
func InternalPath(id int) string {
	return fmt.Sprintf("/hospital/%d", id)
}

// PublicPath is the marketing path of a slug.
func PublicPath(slug string) string {
	return "/" + slug
}
