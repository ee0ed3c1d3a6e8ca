package kakao

// Meta carries the pagination state of a local search response.
type Meta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

// Document is a single place as returned by the category search endpoint. The
// coordinates arrive as decimal strings: X is the longitude, Y the latitude.
type Document struct {
	ID                string `json:"id"`
	PlaceName         string `json:"place_name"`
	CategoryName      string `json:"category_name"`
	CategoryGroupCode string `json:"category_group_code"`
	Phone             string `json:"phone"`
	Tel               string `json:"tel,omitempty"`
	AddressName       string `json:"address_name"`
	RoadAddressName   string `json:"road_address_name"`
	X                 string `json:"x"`
	Y                 string `json:"y"`
	PlaceURL          string `json:"place_url"`
}

// CategoryResponse is the category search payload.
type CategoryResponse struct {
	Meta      Meta       `json:"meta"`
	Documents []Document `json:"documents"`
}

// RegionDocument is one candidate administrative area for a coordinate.
// RegionType is "H" for administrative (dong-level) areas and "B" for legal ones.
type RegionDocument struct {
	RegionType       string  `json:"region_type"`
	AddressName      string  `json:"address_name"`
	Region1DepthName string  `json:"region_1depth_name"`
	Region2DepthName string  `json:"region_2depth_name"`
	Region3DepthName string  `json:"region_3depth_name"`
	Region4DepthName string  `json:"region_4depth_name"`
	Code             string  `json:"code"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
}

// RegionResponse is the coord2regioncode payload.
type RegionResponse struct {
	Meta struct {
		TotalCount int `json:"total_count"`
	} `json:"meta"`
	Documents []RegionDocument `json:"documents"`
}

// Sort orders accepted by the category search endpoint.
const (
	SortAccuracy = "accuracy"
	SortDistance = "distance"
)

// CategoryQuery describes one page request against the category search.
type CategoryQuery struct {
	Code string
	// Rect is "minLon,minLat,maxLon,maxLat".
	Rect string
	Page int
	Size int
	Sort string
}
