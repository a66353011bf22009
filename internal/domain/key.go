package domain

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoHost means the URL parsed but carries no hostname to aggregate under.
var ErrNoHost = errors.New("url has no host")

// Key derives the aggregation key for a URL: the lowercased hostname with
// any :port suffix removed. Endpoints sharing a host roll up into one
// counter even when they differ in scheme, port, or path.
func Key(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	host := u.Hostname() // already port-free
	if host == "" {
		return "", ErrNoHost
	}
	return strings.ToLower(host), nil
}
