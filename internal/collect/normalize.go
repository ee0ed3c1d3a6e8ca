package collect

import (
	"fmt"
	"strconv"
	"strings"

	"cafe/internal/models"
	"cafe/pkg/geo"
	"cafe/pkg/kakao"
)

// FromDocument validates a raw provider record and converts it into a Place.
// Records whose coordinates cannot be parsed or are out of range are rejected
// so they never reach deduplication or annotation.
func FromDocument(d kakao.Document) (models.Place, error) {
	lon, err := strconv.ParseFloat(strings.TrimSpace(d.X), 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("collect: place %q: %w", d.PlaceName, geo.ErrInvalidCoordinate)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(d.Y), 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("collect: place %q: %w", d.PlaceName, geo.ErrInvalidCoordinate)
	}
	c, err := geo.Normalize(geo.Coordinates{Lat: lat, Lon: lon})
	if err != nil {
		return models.Place{}, fmt.Errorf("collect: place %q: %w", d.PlaceName, err)
	}

	phone := d.Phone
	if phone == "" {
		phone = d.Tel
	}
	return models.Place{
		ID:          strings.TrimSpace(d.ID),
		Name:        d.PlaceName,
		Category:    d.CategoryName,
		Longitude:   c.Lon,
		Latitude:    c.Lat,
		RoadAddress: d.RoadAddressName,
		Address:     d.AddressName,
		Phone:       phone,
		URL:         d.PlaceURL,
	}, nil
}
