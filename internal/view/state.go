package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/site"
)

const (
	stateSessionName = "sup-state"

	stateKeyPage   = "page"
	stateKeyMenu   = "menu"
	stateKeyReg    = "reg"
	stateKeyDL     = "dl"
	stateKeyCourse = "course"
)

// LoadState reads the visitor's root controller state from the session.
// A missing or unreadable session yields the initial state. The result is
// always normalised.
func LoadState(c echo.Context) site.State {
	sess, err := session.Get(stateSessionName, c)
	if err != nil {
		return site.Initial()
	}

	page, _ := sess.Values[stateKeyPage].(string)
	menu, _ := sess.Values[stateKeyMenu].(bool)
	reg, _ := sess.Values[stateKeyReg].(bool)
	dl, _ := sess.Values[stateKeyDL].(bool)
	course, _ := sess.Values[stateKeyCourse].(string)

	return site.State{
		Page:             site.PageID(page),
		MobileMenuOpen:   menu,
		RegistrationOpen: reg,
		DownloadOpen:     dl,
		SelectedCourse:   course,
	}.Validate()
}

// SaveState writes s to the visitor's session cookie.
func SaveState(c echo.Context, s site.State) error {
	sess, err := session.Get(stateSessionName, c)
	if err != nil {
		return fmt.Errorf("get state session: %w", err)
	}
	sess.Values[stateKeyPage] = string(s.Page)
	sess.Values[stateKeyMenu] = s.MobileMenuOpen
	sess.Values[stateKeyReg] = s.RegistrationOpen
	sess.Values[stateKeyDL] = s.DownloadOpen
	sess.Values[stateKeyCourse] = s.SelectedCourse
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save state session: %w", err)
	}
	return nil
}

// Dispatch loads the state, applies action and saves the result.
func Dispatch(c echo.Context, action site.Action) (site.State, error) {
	next := site.Reduce(LoadState(c), action)
	if err := SaveState(c, next); err != nil {
		return next, err
	}
	return next, nil
}
