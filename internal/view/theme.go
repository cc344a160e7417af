package view

import (
	"github.com/speakuppartners/site/internal/config"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

// ThemeFrom reads the brand colors from configuration.
func ThemeFrom(cfg config.Provider) layouts.Theme {
	return layouts.Theme{Primary: cfg.GetThemePrimary(), Accent: cfg.GetThemeAccent()}
}
