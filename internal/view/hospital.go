package view

import (
	"fmt"

	"github.com/cureplus/website/internal/domain"
)

// Fallback text shown when a hospital record leaves a field empty. These are
// the only place the strings are defined; pages must not inline their own.
const (
	FallbackSpecialists    = "10+"
	FallbackBeds           = "20+"
	EmergencyValue         = "24/7"
	RatingValue            = "4.8/5"
	NetworkRating          = "4.8"
	FallbackAddress        = "Address not available"
	FallbackPhone          = "Phone number not available"
	FallbackInfrastructure = "Infrastructure information not available."
	NoServicesText         = "No services information available."
	NoFacilitiesText       = "No facilities information available."
	UnavailableText        = "Hospital data is not available."
	FallbackHospitalName   = "Hospital"
	FallbackImageAlt       = "Hospital Image"
)

// Highlight kinds, in display order.
const (
	HighlightSpecialists = "specialists"
	HighlightBeds        = "beds"
	HighlightEmergency   = "emergency"
	HighlightRating      = "rating"
)

// AssetResolver maps a dataset image path to a URL. ok is false when the
// image should be omitted.
type AssetResolver interface {
	Resolve(path string) (url string, ok bool)
}

// Directory is the part of the hospital registry the views need for
// cross-links.
type Directory interface {
	Hospitals() []domain.HospitalSummary
	PublicPath(id int) string
}

// Highlight is one of the four stat cards at the top of a detail page.
type Highlight struct {
	Kind  string
	Label string
	Value string
}

// FacilityItem is a facility with its resolved icon glyph.
type FacilityItem struct {
	Label string
	Icon  string
}

// GalleryItem is a gallery image that resolved to an existing asset. Index
// is its position among rendered images, used by the lightbox.
type GalleryItem struct {
	Index int
	URL   string
	Alt   string
}

// ContactData is the contact block with fallbacks applied.
type ContactData struct {
	// ShowAddress is true when there is a map link to attach the address to.
	ShowAddress bool
	Address     string
	MapURL      string
	Phone       string
	PhoneHref   string
	EmbedMapURL string
	MapTitle    string
}

// NetworkItem is one entry of the "Our Network" sidebar or the about grid.
type NetworkItem struct {
	ID       int
	Name     string
	URL      string
	ImageURL string
	Rating   string
	Active   bool
}

// HospitalData is the view model of a hospital detail page. Every field is
// ready to print: empty optional values were replaced by fallback text and
// list fields are never nil.
type HospitalData struct {
	ID             int
	Name           string
	Heading        string
	Location       string
	Description    string
	HeroURL        string
	HeroAlt        string
	Highlights     []Highlight
	Services       []string
	Facilities     []FacilityItem
	Infrastructure string
	Departments    []string
	Gallery        []GalleryItem
	Contact        ContactData
	Network        []NetworkItem
	EmergencyPhone string
	PublicPath     string
}

// NewHospitalData resolves every fallback of d in one place.
func NewHospitalData(d domain.HospitalDetail, dir Directory, assets AssetResolver, emergencyPhone string) HospitalData {
	d = d.Normalized()
	name := orDefault(d.Name, FallbackHospitalName)

	data := HospitalData{
		ID:             d.ID,
		Name:           name,
		Heading:        orDefault(d.SEO.H1, name),
		Location:       d.Location,
		Description:    d.Description,
		HeroAlt:        firstNonEmpty(d.SEO.H1, d.Name, FallbackImageAlt),
		Highlights:     Highlights(d),
		Services:       make([]string, 0, len(d.Services)),
		Facilities:     make([]FacilityItem, 0, len(d.Facilities)),
		Infrastructure: orDefault(d.Infrastructure, FallbackInfrastructure),
		Departments:    d.Departments,
		Gallery:        make([]GalleryItem, 0, len(d.Gallery)),
		Contact:        NewContactData(d),
		EmergencyPhone: emergencyPhone,
		PublicPath:     dir.PublicPath(d.ID),
	}

	if u, ok := assets.Resolve(d.ImageURL); ok {
		data.HeroURL = u
	}
	for _, s := range d.Services {
		data.Services = append(data.Services, s.Label)
	}
	for _, f := range d.Facilities {
		data.Facilities = append(data.Facilities, FacilityItem{Label: f.Label, Icon: FacilityIcon(f.Icon)})
	}
	for i, img := range d.Gallery {
		u, ok := assets.Resolve(img)
		if !ok {
			continue
		}
		data.Gallery = append(data.Gallery, GalleryItem{
			Index: len(data.Gallery),
			URL:   u,
			Alt:   GalleryAlt(d, i),
		})
	}
	data.Network = NetworkItems(dir, assets, d.ID)
	return data
}

// Highlights returns the four stat cards. Emergency and rating are fixed
// placeholders rather than data.
func Highlights(d domain.HospitalDetail) []Highlight {
	return []Highlight{
		{Kind: HighlightSpecialists, Label: "Specialists", Value: orDefault(d.Specialists, FallbackSpecialists)},
		{Kind: HighlightBeds, Label: "Beds", Value: orDefault(d.Beds, FallbackBeds)},
		{Kind: HighlightEmergency, Label: "Emergency", Value: EmergencyValue},
		{Kind: HighlightRating, Label: "Rating", Value: RatingValue},
	}
}

// NewContactData applies the contact fallbacks.
func NewContactData(d domain.HospitalDetail) ContactData {
	c := d.Contact
	return ContactData{
		ShowAddress: c.GoogleMapURL != "",
		Address:     orDefault(c.Address, FallbackAddress),
		MapURL:      c.GoogleMapURL,
		Phone:       orDefault(c.Phone, FallbackPhone),
		PhoneHref:   "tel:" + c.Phone,
		EmbedMapURL: c.EmbedMapURL,
		MapTitle:    "Location of " + orDefault(d.Name, FallbackHospitalName),
	}
}

// GalleryAlt returns the alt text of gallery image i.
func GalleryAlt(d domain.HospitalDetail, i int) string {
	if i < len(d.SEO.AltTexts) && d.SEO.AltTexts[i] != "" {
		return d.SEO.AltTexts[i]
	}
	return fmt.Sprintf("%s image %d", orDefault(d.Name, FallbackHospitalName), i+1)
}

// NetworkItems lists every hospital of dir, marking activeID.
func NetworkItems(dir Directory, assets AssetResolver, activeID int) []NetworkItem {
	hospitals := dir.Hospitals()
	items := make([]NetworkItem, 0, len(hospitals))
	for _, h := range hospitals {
		item := NetworkItem{
			ID:     h.ID,
			Name:   h.Name,
			URL:    dir.PublicPath(h.ID),
			Rating: NetworkRating,
			Active: h.ID == activeID,
		}
		if u, ok := assets.Resolve(h.Image); ok {
			item.ImageURL = u
		}
		items = append(items, item)
	}
	return items
}

var facilityIcons = map[string]string{
	"FaWifi":    "📶",
	"FaParking": "🅿",
	"FaBed":     "🛏",
	"FaXRay":    "🩻",
}

// DefaultFacilityIcon is used for facilities without a known icon key.
const DefaultFacilityIcon = "🏨"

// FacilityIcon maps a facility icon key to its glyph.
func FacilityIcon(key string) string {
	if icon, ok := facilityIcons[key]; ok {
		return icon
	}
	return DefaultFacilityIcon
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
