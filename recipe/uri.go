package recipe

import (
	"net/url"
	"strings"
)

// SafeLocal turns a raw display string into a stable identifier suffix:
// leading/trailing whitespace is trimmed, internal spaces become
// underscores, and the rest is percent-encoded as a URL path segment.
// The empty string means "no entity"; callers skip entity creation.
//
// Strings differing only in case or in non-space whitespace yield
// distinct identifiers. That matches the upstream data contract and is
// deliberately not folded further.
func SafeLocal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return url.PathEscape(strings.ReplaceAll(s, " ", "_"))
}
