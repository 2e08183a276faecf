package catalog

import (
	"embed"

	"github.com/cureplus/website/internal/domain"
)

// DefaultDataFile is the name of the embedded dataset inside DataFS.
const DefaultDataFile = "data/hospitals.yaml"

// DataFS holds the canonical dataset compiled into the binary.
//
//go:embed data/hospitals.yaml
var DataFS embed.FS

// Document is the on-disk shape of the dataset.
type Document struct {
	Network   domain.Network `yaml:"network" validate:"required"`
	Hospitals []Record       `yaml:"hospitals" validate:"required,min=1,dive"`
}

// Record is one hospital entry. The summary, slug mapping and detail record
// are all projected from it so they cannot disagree.
type Record struct {
	Slug                  string `yaml:"slug" validate:"required,slug"`
	Image                 string `yaml:"image,omitempty"`
	domain.HospitalDetail `yaml:",inline"`
}

// Summary projects the listing view of the record.
func (r Record) Summary() domain.HospitalSummary {
	return domain.HospitalSummary{ID: r.ID, Name: r.Name, Image: r.Image}
}
