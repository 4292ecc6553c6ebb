package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// LocationHandler serves the location context.
type LocationHandler struct {
	location ports.LocationService
}

func NewLocationHandler(location ports.LocationService) *LocationHandler {
	return &LocationHandler{location: location}
}

// Get handles GET /location. Without lat and lng the default place is
// returned with a notice, as when the device denies access.
//
// @Summary      Location context
// @Tags         context
// @Produce      json
// @Param        lat  query     number  false  "Latitude"
// @Param        lng  query     number  false  "Longitude"
// @Success      200  {object}  domain.Location
// @Failure      400  {object}  map[string]string
// @Router       /location [get]
func (h *LocationHandler) Get(c echo.Context) error {
	at, err := coordinates(c.QueryParam("lat"), c.QueryParam("lng"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.location.Detect(c.Request().Context(), at))
}

// coordinates parses a lat/lng pair. Both empty means no position.
func coordinates(lat, lng string) (*domain.Coordinates, error) {
	if lat == "" && lng == "" {
		return nil, nil
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || la < -90 || la > 90 {
		return nil, domain.Invalid("lat", "lat must be a valid latitude")
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil || ln < -180 || ln > 180 {
		return nil, domain.Invalid("lng", "lng must be a valid longitude")
	}
	return &domain.Coordinates{Lat: la, Lng: ln}, nil
}
