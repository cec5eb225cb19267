// Package identity resolves the canonical identifier of a backend resource.
// Restaurant-service representations either expose a numeric id or are only
// addressable through their hypermedia self link; every caller goes through
// Resolve instead of reimplementing the fallback.
package identity

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnresolvableIdentity = errors.New("resource has neither an id nor a self link")

// Resource is any representation that may carry an explicit id and/or a
// hypermedia self link.
type Resource interface {
	ExplicitID() *int64
	SelfLink() string
}

// Resolve returns the canonical identifier for a resource: the explicit id
// when present, otherwise the trailing segment of the self link. Pure and
// cheap; results are intentionally not cached on the resource because embedded
// representations of the same entity can carry different link shapes.
func Resolve(r Resource) (string, error) {
	if id := r.ExplicitID(); id != nil {
		return strconv.FormatInt(*id, 10), nil
	}
	if seg := FromLink(r.SelfLink()); seg != "" {
		return seg, nil
	}
	return "", ErrUnresolvableIdentity
}

// FromLink extracts the trailing path segment of a hypermedia href.
// Returns "" for an empty or segment-less href.
func FromLink(href string) string {
	if href == "" {
		return ""
	}
	href = strings.TrimSuffix(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}
