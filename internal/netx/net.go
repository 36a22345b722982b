// Package netx contains URL helpers.
package netx

import (
	"net/url"
	"strings"
)

// JoinURL appends a stored file name to a configured host URL. Exactly one
// slash separates the two. The file name is path-escaped; an empty name
// yields an empty string so callers can tell "no document" apart.
func JoinURL(base, name string) string {
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(name)
}
