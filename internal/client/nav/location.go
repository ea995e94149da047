// Package nav models the navigational address: the shareable, bookmarkable
// location (path plus query parameters) that encodes the current query state
// and the viewed record's identity. A Navigator is the client-side stand-in
// for browser history.
package nav

import (
	"net/url"
	"strings"
)

// Location is one navigational address.
type Location struct {
	Path  string
	Query url.Values
}

// NewLocation builds a Location with an empty query.
func NewLocation(path string) Location {
	return Location{Path: path, Query: url.Values{}}
}

// String renders the location as path?query, omitting the '?' when the query
// is empty.
func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// ParseLocation parses a path?query string back into a Location.
func ParseLocation(s string) (Location, error) {
	u, err := url.Parse(s)
	if err != nil {
		return Location{}, err
	}
	q := u.Query()
	if q == nil {
		q = url.Values{}
	}
	return Location{Path: u.Path, Query: q}, nil
}

// clone returns a deep copy so callers never share mutable query values.
func (l Location) clone() Location {
	q := url.Values{}
	for k, vs := range l.Query {
		q[k] = append([]string(nil), vs...)
	}
	return Location{Path: l.Path, Query: q}
}

// Navigator exposes the current location and the two ways to change it:
// Push adds a history entry, Replace rewrites the current one.
type Navigator interface {
	Location() Location
	Push(Location)
	Replace(Location)
}

// RedirectParam carries the originally requested destination on the login
// address so it can be restored after a successful login.
const RedirectParam = "redirect"

// LoginLocation builds the login address recording from as the destination
// to return to.
func LoginLocation(from Location) Location {
	l := NewLocation("/login")
	if s := from.String(); s != "" && s != "/login" {
		l.Query.Set(RedirectParam, s)
	}
	return l
}

// ConsumeRedirect extracts the recorded destination from a login address.
// The second result is false when no usable redirect is present.
func ConsumeRedirect(l Location) (Location, bool) {
	raw := strings.TrimSpace(l.Query.Get(RedirectParam))
	if raw == "" {
		return Location{}, false
	}
	dest, err := ParseLocation(raw)
	if err != nil || dest.Path == "" {
		return Location{}, false
	}
	return dest, true
}
