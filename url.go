package websummary

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is a syntactically valid absolute HTTP(S) URL.
// It is a pure check: no network call is made, and downstream components
// may assume a scheme and host are present. Returns an EINVALID error for
// empty, unparseable, or incomplete input.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Errorf(EINVALID, "URL required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL must include http:// or https://")
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL must include a host")
	}

	return nil
}
