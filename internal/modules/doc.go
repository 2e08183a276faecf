// Package modules holds the site's feature modules. Each module registers
// its handlers with the injector and mounts its routes when booted; the list
// of active modules lives in internal/app.
package modules
