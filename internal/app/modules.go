// Package app is the single place that decides which feature modules the
// server runs and what they are given.
package app

import (
	"github.com/speakuppartners/site/internal/module"
	"github.com/speakuppartners/site/internal/modules/leads"
	"github.com/speakuppartners/site/internal/pubsub"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
}

// NewModules creates and returns the list of all active modules for the application.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		leads.New(leadsDeps(deps)),
	}
}
