package utils

import "strings"

// ResolveOrigin returns the allowlist entry matching the request's Origin
// header, and fallback when there is none. Redirect URLs are built from the
// result, so an attacker-supplied Origin never reaches them and matches
// always come out in the configured canonical casing.
func ResolveOrigin(origin string, allowed []string, fallback string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin != "" {
		for _, a := range allowed {
			if strings.EqualFold(origin, a) {
				return a
			}
		}
	}
	return strings.TrimRight(fallback, "/")
}
