// Package components holds small building blocks shared by partials and pages.
package components

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/site"
)

// Field is a hidden form field carried by an action.
type Field struct {
	Name  string
	Value string
}

// ActionButton renders a button that POSTs params to endpoint. Without
// JavaScript it is a plain form submission; with htmx it is boosted.
func ActionButton(endpoint string, params []Field, button ...gomponents.Node) gomponents.Node {
	return Form(
		Method("post"),
		Action(endpoint),
		gomponents.Map(params, func(p Field) gomponents.Node {
			return Input(Type("hidden"), Name(p.Name), Value(p.Value))
		}),
		Button(Type("submit"), gomponents.Group(button)),
	)
}

// NavButton requests a page change.
func NavButton(page site.PageID, button ...gomponents.Node) gomponents.Node {
	return ActionButton(site.ActionNavigate, []Field{{Name: "page", Value: string(page)}},
		append([]gomponents.Node{Data("nav-target", string(page))}, button...)...)
}

// EnrollButton opens the registration modal for courseID. An empty
// courseID opens it without a course.
func EnrollButton(courseID string, button ...gomponents.Node) gomponents.Node {
	var params []Field
	if courseID != "" {
		params = []Field{{Name: "course", Value: courseID}}
	}
	return ActionButton(site.ActionEnroll, params, button...)
}
