package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

const defaultGeocodeTimeout = 5 * time.Second

// LocationService resolves a client's city and state, falling back to the
// configured default place.
type LocationService struct {
	geocoder ports.Geocoder
	fallback domain.Place
	timeout  time.Duration
	log      zerolog.Logger
}

func NewLocationService(geocoder ports.Geocoder, fallback domain.Place, timeout time.Duration, log zerolog.Logger) *LocationService {
	if timeout <= 0 {
		timeout = defaultGeocodeTimeout
	}
	return &LocationService{geocoder: geocoder, fallback: fallback, timeout: timeout, log: log}
}

// Detect reverse-geocodes at. A nil position means the client could not or
// would not share one.
func (s *LocationService) Detect(ctx context.Context, at *domain.Coordinates) domain.Location {
	if at == nil {
		return domain.Location{
			Place:  s.fallback,
			Notice: fmt.Sprintf("Location access denied. Using default location: %s", s.fallback.City),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	place, err := s.geocoder.Reverse(ctx, *at)
	if err != nil {
		s.log.Warn().Err(err).Float64("lat", at.Lat).Float64("lng", at.Lng).Msg("reverse geocoding failed")
		return domain.Location{
			Place:       s.fallback,
			Coordinates: at,
			Notice:      fmt.Sprintf("Unable to detect your city. Using default location: %s", s.fallback.City),
		}
	}
	return domain.Location{Place: place, Coordinates: at}
}
