// Package sanitize removes executable markup from user supplied text before it
// leaves the service.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	Sanitize(text string) string
}

// Policy keeps user generated markup such as <strong> and https images while
// dropping scripts, event handler attributes and javascript: URLs.
type Policy struct {
	policy *bluemonday.Policy
}

func New() *Policy {
	return &Policy{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns text with apostrophes left as typed. Attribute values are
// always double quoted in the output, so a literal ' cannot end one.
func (p *Policy) Sanitize(text string) string {
	return strings.ReplaceAll(p.policy.Sanitize(text), "&#39;", "'")
}
