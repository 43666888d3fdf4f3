// Package repository binds each entity kind to the resolution engine with
// its collection, seed artifact and default data.
package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound reports an absent document id. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ErrUnavailable reports a store failure on a write with no degraded
// path. Handlers map it to 503 rather than fabricating success.
var ErrUnavailable = errors.New("store unavailable")

// Seed artifact names under <uploads>/seeds/.
const (
	seedSettings   = "site_settings"
	seedCategories = "categories"
	seedHeroSlides = "hero_slides"
)

// lookupErr classifies a FindOne failure on an existence check: an
// absent document is ErrNotFound, anything else is a store failure.
func lookupErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// applyFields copies caller-supplied values into a $set document,
// restricted to the allowed field names. Omitted fields are preserved on
// the stored document.
func applyFields(body map[string]any, allowed ...string) map[string]any {
	set := make(map[string]any, len(body))
	for _, key := range allowed {
		if v, ok := body[key]; ok {
			set[key] = v
		}
	}
	return set
}
