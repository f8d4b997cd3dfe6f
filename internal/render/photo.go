package render

import (
	_ "embed"
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

//go:embed assets/placeholder-profile.svg
var placeholderSVG []byte

var placeholderPhoto = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(placeholderSVG)

// photoSource keeps inline images and http(s) URLs whose host has a
// registrable domain. Everything else is swapped for the local placeholder
// so the page never depends on an unreachable host.
func photoSource(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return placeholderPhoto
	}
	if strings.HasPrefix(raw, "data:image/") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return placeholderPhoto
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(u.Hostname()); err != nil {
		return placeholderPhoto
	}
	return raw
}
