package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

var (
	ErrAddressNotFound = errors.New("no address found for map link")
)

// MapLinkResolver reads the place name embedded in a map link, either from a
// q or query parameter or from a /place/<name>/ path segment. It makes no
// network calls.
type MapLinkResolver struct{}

func NewMapLinkResolver() *MapLinkResolver {
	return &MapLinkResolver{}
}

func (r *MapLinkResolver) Resolve(ctx context.Context, mapLink string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	u, err := url.Parse(strings.TrimSpace(mapLink))
	if err != nil || u.Host == "" {
		return "", ErrAddressNotFound
	}

	q := u.Query()
	for _, key := range []string{"q", "query"} {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			return v, nil
		}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, s := range segments {
		if s != "place" || i+1 >= len(segments) {
			continue
		}
		name, err := url.PathUnescape(segments[i+1])
		if err != nil {
			return "", ErrAddressNotFound
		}
		if name = strings.TrimSpace(strings.ReplaceAll(name, "+", " ")); name != "" {
			return name, nil
		}
	}

	return "", ErrAddressNotFound
}
