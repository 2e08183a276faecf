package domain

// Card is a titled blurb on the about page, such as the vision statement or
// a value proposition. Icon is a presentation key.
type Card struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Network is the organization-level content shared by every page.
type Network struct {
	Name           string   `yaml:"name" json:"name" validate:"required"`
	Headline       string   `yaml:"headline" json:"headline"`
	Tagline        string   `yaml:"tagline" json:"tagline"`
	Overview       []string `yaml:"overview" json:"overview"`
	Pillars        []Card   `yaml:"pillars" json:"pillars" validate:"dive"`
	ValueProps     []Card   `yaml:"valueProps" json:"valueProps" validate:"dive"`
	EmergencyPhone string   `yaml:"emergencyPhone" json:"emergencyPhone"`
	CareersURL     string   `yaml:"careersUrl" json:"careersUrl"`
	CareersText    string   `yaml:"careersText" json:"careersText"`
}
