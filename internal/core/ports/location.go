package ports

import (
	"context"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// Geocoder resolves coordinates to a place.
type Geocoder interface {
	Reverse(ctx context.Context, at domain.Coordinates) (domain.Place, error)
}

// LocationService produces the location context of a client.
type LocationService interface {
	Detect(ctx context.Context, at *domain.Coordinates) domain.Location
}

// LocaleService serves UI translations.
type LocaleService interface {
	Negotiate(query, acceptLanguage string) string
	Translations(lang string) map[string]string
	Translate(lang, key string) string
	Toggle(lang string) string
}
