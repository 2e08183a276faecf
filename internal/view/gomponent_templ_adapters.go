package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// --- GOMPONENTS -> TEMPL ADAPTER ---

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface.
// This allows Gomponents page content to be handed to the templ-typed layout.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements the templ.Component interface by delegating the writing to the
// underlying gomponents.Node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// --- TEMPL -> GOMPONENTS ADAPTER ---

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
// The layout uses it to place page content inside its Gomponents document.
type TemplToGomponentAdapter struct {
	Ctx       context.Context
	Component templ.Component
}

// Render implements the gomponents.Node interface. Gomponents' Render does not pass a
// context, so the adapter carries the one it was built with.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node rendered with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Ctx: ctx, Component: component}
}
