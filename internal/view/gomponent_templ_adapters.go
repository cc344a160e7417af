package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents tree travel through code that speaks
// templ.Component, such as the renderer and the static exporter.
type gomponentComponent struct {
	node gomponents.Node
}

// Render ignores ctx; gomponents nodes render synchronously from values.
func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return gomponentComponent{node: node}
}
