package models

import (
	"fmt"
	"net/url"

	"cafe/internal/keys"
	"cafe/pkg/geo"
)

type Brand string

const (
	BrandChain       Brand = "chain"
	BrandIndependent Brand = "independent"
)

// UnknownRegion is how an empty region label is presented in region pickers.
const UnknownRegion = "기타"

// Place is a point of interest collected from the search provider.
type Place struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	RoadAddress string  `json:"roadAddress,omitempty"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	URL         string  `json:"url,omitempty"`
	// RegionLabel is nil until the place has been annotated; an empty label
	// means the region could not be resolved.
	RegionLabel *string `json:"regionLabel,omitempty"`
	Brand       Brand   `json:"brand,omitempty"`
}

// Key is the identity key used for deduplication and every later lookup.
func (p Place) Key() string {
	return keys.Identity(p.ID, p.Longitude, p.Latitude, p.Name)
}

func (p Place) Coordinates() geo.Coordinates {
	return geo.Coordinates{Lat: p.Latitude, Lon: p.Longitude}
}

// Region returns the region label, or "" when the place is not annotated.
func (p Place) Region() string {
	if p.RegionLabel == nil {
		return ""
	}
	return *p.RegionLabel
}

// DisplayAddress prefers the road address over the lot address.
func (p Place) DisplayAddress() string {
	if p.RoadAddress != "" {
		return p.RoadAddress
	}
	return p.Address
}

// DirectionsURL links to turn-by-turn directions to the place.
func (p Place) DirectionsURL() string {
	return fmt.Sprintf("https://map.kakao.com/link/to/%s,%v,%v", url.PathEscape(p.Name), p.Latitude, p.Longitude)
}

// WithRegion returns a copy of p carrying the given region label.
func (p Place) WithRegion(label string) Place {
	p.RegionLabel = &label
	return p
}
