// Package linkedin resolves LinkedIn personal-profile references and
// normalizes the loosely-shaped profile documents returned by the upstream
// data provider.
package linkedin

import (
	"net/url"
	"regexp"
	"strings"
)

// hosts is the exact set of hostnames that can carry a personal profile path.
var hosts = map[string]bool{
	"linkedin.com":     true,
	"www.linkedin.com": true,
	"m.linkedin.com":   true,
	"linkedin.cn":      true,
	"www.linkedin.cn":  true,
}

// personalPathPrefixes mark personal-profile paths. Company, school and job
// pages use different prefixes and must not resolve.
var personalPathPrefixes = []string{"/in/", "/pub/"}

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9-]{3,100}$`)
	// Substring heuristic for org/school/company handles. Known to
	// false-positive on personal handles containing these words; kept as a
	// substring match on purpose so behavior stays predictable.
	orgKeywordRE = regexp.MustCompile(`(?i)(company|school|learning|posts|feed|jobs|groups|events)`)
)

// IsLikelyUsername reports whether s looks like a LinkedIn personal-profile
// username: 3-100 characters of letters, digits and hyphens, and not an
// organizational keyword. This predicate is the single source of truth for
// handle validity; resolution and request pre-validation both use it.
func IsLikelyUsername(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if !usernameRE.MatchString(trimmed) {
		return false
	}
	return !orgKeywordRE.MatchString(trimmed)
}

// ExtractUsername resolves free-form input (a profile URL in any supported
// host/locale variant, or a bare username) to a canonical username.
// It returns "" when the input is not a usable personal-profile reference;
// malformed input never produces an error.
func ExtractUsername(raw string) string {
	input := strings.TrimSpace(raw)
	if input == "" {
		return ""
	}

	// Bare usernames bypass URL parsing entirely.
	if IsLikelyUsername(input) {
		return input
	}

	if !strings.HasPrefix(input, "http") {
		input = "https://" + input
	}
	u, err := url.Parse(input)
	if err != nil {
		return ""
	}
	if !hosts[strings.ToLower(u.Hostname())] {
		return ""
	}

	// u.Path is already percent-decoded.
	pathname := u.Path
	lower := strings.ToLower(pathname)

	for _, prefix := range personalPathPrefixes {
		idx := strings.Index(lower, prefix)
		if idx == -1 {
			continue
		}
		after := pathname[idx+len(prefix):]
		slug := after
		for _, sep := range []string{"/", "?", "#"} {
			slug, _, _ = strings.Cut(slug, sep)
		}
		if slug = strings.TrimSpace(slug); IsLikelyUsername(slug) {
			return slug
		}
	}

	// Localized or mwlite paths can bury the marker mid-path, e.g.
	// /mwlite/in/<username>.
	parts := strings.FieldsFunc(pathname, func(r rune) bool { return r == '/' })
	for i, p := range parts {
		if strings.EqualFold(p, "in") && i+1 < len(parts) && IsLikelyUsername(parts[i+1]) {
			return parts[i+1]
		}
	}

	return ""
}

// Match reports whether raw resolves to a personal-profile username.
func Match(raw string) bool {
	return ExtractUsername(raw) != ""
}

// ProfileURL returns the canonical profile URL for a username, or "" when
// the username is empty.
func ProfileURL(username string) string {
	if username == "" {
		return ""
	}
	return "https://www.linkedin.com/in/" + username
}
