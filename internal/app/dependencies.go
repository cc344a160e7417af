package app

import (
	"github.com/speakuppartners/site/internal/modules/leads"
)

// leadsDeps creates the dependency struct for the leads module.
func leadsDeps(deps Dependencies) leads.Dependencies {
	return leads.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
	}
}
