package view

import (
	"strings"
	"testing"

	"github.com/cureplus/website/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAssets resolves every path except those containing "missing".
type stubAssets struct{}

func (stubAssets) Resolve(p string) (string, bool) {
	if p == "" || strings.Contains(p, "missing") {
		return "", false
	}
	return "/assets" + p, true
}

type stubDirectory struct {
	hospitals []domain.HospitalSummary
}

func (d stubDirectory) Hospitals() []domain.HospitalSummary { return d.hospitals }

func (d stubDirectory) PublicPath(id int) string {
	for _, h := range d.hospitals {
		if h.ID == id {
			return "/" + domain.Slugify(h.Name)
		}
	}
	return "#"
}

var testDir = stubDirectory{hospitals: []domain.HospitalSummary{
	{ID: 1, Name: "Alpha Hospital", Image: "/hospital/alpha.png"},
	{ID: 2, Name: "Beta Hospital", Image: "/hospital/missing.png"},
}}

func TestNewHospitalDataFallbacks(t *testing.T) {
	d := domain.HospitalDetail{ID: 2, Name: "Beta Hospital"}

	data := NewHospitalData(d, testDir, stubAssets{}, "+91 90351 93777")

	t.Run("absent services is an empty list", func(t *testing.T) {
		require.NotNil(t, data.Services)
		assert.Len(t, data.Services, 0)
		assert.NotNil(t, data.Facilities)
		assert.NotNil(t, data.Departments)
		assert.NotNil(t, data.Gallery)
	})

	t.Run("absent phone shows fallback text", func(t *testing.T) {
		assert.Equal(t, "Phone number not available", data.Contact.Phone)
		assert.Equal(t, "tel:", data.Contact.PhoneHref)
	})

	t.Run("absent address shows fallback text", func(t *testing.T) {
		assert.Equal(t, FallbackAddress, data.Contact.Address)
		assert.False(t, data.Contact.ShowAddress)
	})

	t.Run("highlights use placeholders", func(t *testing.T) {
		require.Len(t, data.Highlights, 4)
		assert.Equal(t, "10+", data.Highlights[0].Value)
		assert.Equal(t, "20+", data.Highlights[1].Value)
		assert.Equal(t, "24/7", data.Highlights[2].Value)
		assert.Equal(t, "4.8/5", data.Highlights[3].Value)
	})

	t.Run("text fallbacks", func(t *testing.T) {
		assert.Equal(t, "Beta Hospital", data.Heading)
		assert.Equal(t, "Beta Hospital", data.HeroAlt)
		assert.Equal(t, FallbackInfrastructure, data.Infrastructure)
		assert.Equal(t, "Location of Beta Hospital", data.Contact.MapTitle)
		assert.Empty(t, data.HeroURL, "missing hero image must be omitted")
	})

	t.Run("network marks the active hospital", func(t *testing.T) {
		require.Len(t, data.Network, 2)
		assert.False(t, data.Network[0].Active)
		assert.True(t, data.Network[1].Active)
		assert.Equal(t, "/assets/hospital/alpha.png", data.Network[0].ImageURL)
		assert.Empty(t, data.Network[1].ImageURL)
		assert.Equal(t, NetworkRating, data.Network[0].Rating)
	})
}

func TestNewHospitalDataFullRecord(t *testing.T) {
	d := domain.HospitalDetail{
		ID:          1,
		Name:        "Alpha Hospital",
		ImageURL:    "/alpha/hero.png",
		Specialists: "15+",
		Beds:        "60+",
		Services:    []domain.Service{{Label: "Pharmacy"}, {Label: "Paediatrics"}},
		Facilities:  []domain.Facility{{Label: "Wi-Fi", Icon: "FaWifi"}, {Label: "Canteen", Icon: "FaCoffee"}},
		Gallery:     []string{"/alpha/1.png", "/alpha/missing.png", "/alpha/3.png"},
		SEO:         domain.SEO{H1: "Alpha Hospital, Mysuru", AltTexts: []string{"Front view"}},
		Contact: domain.Contact{
			Address:      "1 Main Road",
			Phone:        "+91 1",
			GoogleMapURL: "https://maps.example.com/a",
		},
	}

	data := NewHospitalData(d, testDir, stubAssets{}, "")

	assert.Equal(t, "Alpha Hospital, Mysuru", data.Heading)
	assert.Equal(t, "Alpha Hospital, Mysuru", data.HeroAlt)
	assert.Equal(t, "/assets/alpha/hero.png", data.HeroURL)
	assert.Equal(t, []string{"Pharmacy", "Paediatrics"}, data.Services)
	assert.Equal(t, "15+", data.Highlights[0].Value)
	assert.Equal(t, "60+", data.Highlights[1].Value)

	assert.Equal(t, "📶", data.Facilities[0].Icon)
	assert.Equal(t, DefaultFacilityIcon, data.Facilities[1].Icon)

	require.Len(t, data.Gallery, 2, "missing gallery image must be omitted")
	assert.Equal(t, GalleryItem{Index: 0, URL: "/assets/alpha/1.png", Alt: "Front view"}, data.Gallery[0])
	assert.Equal(t, GalleryItem{Index: 1, URL: "/assets/alpha/3.png", Alt: "Alpha Hospital image 3"}, data.Gallery[1])

	assert.True(t, data.Contact.ShowAddress)
	assert.Equal(t, "1 Main Road", data.Contact.Address)
	assert.Equal(t, "tel:+91 1", data.Contact.PhoneHref)
	assert.Equal(t, "/alpha-hospital", data.PublicPath)
}

func TestGalleryAltWithoutName(t *testing.T) {
	assert.Equal(t, "Hospital image 2", GalleryAlt(domain.HospitalDetail{}, 1))
}

func TestNewLightboxData(t *testing.T) {
	h := HospitalData{Gallery: []GalleryItem{{Index: 0}, {Index: 1}, {Index: 2}}}

	lb, ok := NewLightboxData("alpha", h, 0)
	require.True(t, ok)
	assert.Equal(t, 2, lb.Prev)
	assert.Equal(t, 1, lb.Next)
	assert.Equal(t, 3, lb.Total)

	lb, ok = NewLightboxData("alpha", h, 2)
	require.True(t, ok)
	assert.Equal(t, 0, lb.Next)

	_, ok = NewLightboxData("alpha", h, 3)
	assert.False(t, ok)
	_, ok = NewLightboxData("alpha", h, -1)
	assert.False(t, ok)
	_, ok = NewLightboxData("alpha", HospitalData{}, 0)
	assert.False(t, ok)
}

func TestNewAboutData(t *testing.T) {
	about := NewAboutData(domain.Network{Name: "Net"}, testDir, stubAssets{})
	require.Len(t, about.Hospitals, 2)
	assert.Equal(t, "/alpha-hospital", about.Hospitals[0].URL)
	for _, h := range about.Hospitals {
		assert.False(t, h.Active)
	}
}
