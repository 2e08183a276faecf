package view

import "github.com/cureplus/website/internal/domain"

// AboutData is the view model of the about page.
type AboutData struct {
	Network   domain.Network
	Hospitals []NetworkItem
}

// NewAboutData builds the about page model; no hospital is marked active.
func NewAboutData(n domain.Network, dir Directory, assets AssetResolver) AboutData {
	return AboutData{
		Network:   n,
		Hospitals: NetworkItems(dir, assets, 0),
	}
}

// LightboxData is the view model of one opened gallery image.
type LightboxData struct {
	HospitalKey string
	Image       GalleryItem
	Total       int
	Prev        int
	Next        int
}

// NewLightboxData selects image index of h's gallery. ok is false when the
// index is out of range.
func NewLightboxData(key string, h HospitalData, index int) (LightboxData, bool) {
	total := len(h.Gallery)
	if index < 0 || index >= total {
		return LightboxData{}, false
	}
	return LightboxData{
		HospitalKey: key,
		Image:       h.Gallery[index],
		Total:       total,
		Prev:        (index - 1 + total) % total,
		Next:        (index + 1) % total,
	}, true
}
