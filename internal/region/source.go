package region

import (
	"context"

	"cafe/internal/metrics"
	"cafe/pkg/geo"
	"cafe/pkg/kakao"
	"cafe/pkg/location"
)

// Source resolves a coordinate to an administrative region label. An empty
// label with a nil error means the service answered without a usable name.
type Source interface {
	Label(ctx context.Context, c geo.Coordinates) (string, error)
}

// RegionCoder is the reverse-geocoding half of the Kakao client.
type RegionCoder interface {
	RegionCode(ctx context.Context, lon, lat float64) (*kakao.RegionResponse, error)
}

// KakaoSource labels places from coord2regioncode results.
type KakaoSource struct {
	coder RegionCoder
}

func NewKakaoSource(coder RegionCoder) *KakaoSource {
	return &KakaoSource{coder: coder}
}

func (s *KakaoSource) Label(ctx context.Context, c geo.Coordinates) (string, error) {
	resp, err := s.coder.RegionCode(ctx, c.Lon, c.Lat)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("region_code", metrics.Error).Inc()
		return "", err
	}
	metrics.ProviderRequests.WithLabelValues("region_code", metrics.OK).Inc()
	return Pick(resp.Documents), nil
}

// Pick chooses the administrative ("H") candidate when present, otherwise the
// first one, and returns its most granular non-empty name.
func Pick(docs []kakao.RegionDocument) string {
	if len(docs) == 0 {
		return ""
	}
	chosen := docs[0]
	for _, d := range docs {
		if d.RegionType == "H" {
			chosen = d
			break
		}
	}
	if chosen.Region3DepthName != "" {
		return chosen.Region3DepthName
	}
	return chosen.Region2DepthName
}

// Reverser is the reverse lookup of the Nominatim client.
type Reverser interface {
	Reverse(ctx context.Context, lat, lon float64) (*location.ReverseResponse, error)
}

// NominatimSource labels places from OpenStreetMap addresses.
type NominatimSource struct {
	reverser Reverser
}

func NewNominatimSource(r Reverser) *NominatimSource {
	return &NominatimSource{reverser: r}
}

func (s *NominatimSource) Label(ctx context.Context, c geo.Coordinates) (string, error) {
	resp, err := s.reverser.Reverse(ctx, c.Lat, c.Lon)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("reverse", metrics.Error).Inc()
		return "", err
	}
	metrics.ProviderRequests.WithLabelValues("reverse", metrics.OK).Inc()
	if area := resp.Address.Area(); area != "" {
		return area, nil
	}
	return resp.Address.Locality(), nil
}
