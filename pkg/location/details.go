package location

// ReverseResponse is the Nominatim reverse geocoding payload (format=jsonv2).
type ReverseResponse struct {
	PlaceID     int64   `json:"place_id"`
	Licence     string  `json:"licence"`
	OsmType     string  `json:"osm_type"`
	OsmID       int64   `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	PlaceRank   int     `json:"place_rank"`
	AddressType string  `json:"addresstype"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Importance  float64 `json:"importance"`
	Address     Address `json:"address"`
	Error       string  `json:"error,omitempty"`
}

// Address is the structured address of a reverse lookup, most granular first.
type Address struct {
	Road          string `json:"road"`
	Neighbourhood string `json:"neighbourhood"`
	Quarter       string `json:"quarter"`
	Suburb        string `json:"suburb"`
	CityDistrict  string `json:"city_district"`
	Borough       string `json:"borough"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	County        string `json:"county"`
	Province      string `json:"province"`
	Postcode      string `json:"postcode"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

// Area returns the most granular sub-city area name, or "".
func (a Address) Area() string {
	return firstNonEmpty(a.Quarter, a.Suburb, a.Neighbourhood, a.Village)
}

// Locality returns the city-level name one step coarser than Area, or "".
func (a Address) Locality() string {
	return firstNonEmpty(a.CityDistrict, a.Borough, a.City, a.Town, a.County)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
