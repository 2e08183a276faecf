package app

import (
	"github.com/cureplus/website/internal/module"
	"github.com/cureplus/website/internal/modules/api"
	"github.com/cureplus/website/internal/modules/hospitals"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		// Add new application modules here.
		hospitals.New(),
		api.New(),
	}
}
