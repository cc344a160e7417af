package registry

import (
	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/internal/forms"
)

// Service keys shared between modules. Using typed constants prevents typos
// and type mismatches at the call site.
const (
	LeadSinkKey  Key[domain.LeadSink]  = "leads.sink"
	SubmitterKey Key[*forms.Submitter] = "leads.submitter"
)
