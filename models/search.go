package models

// SearchQuery carries the parameters of one candidate-matching request.
type SearchQuery struct {
	Q        string  `form:"q" json:"q"`
	Lat      float64 `form:"lat" json:"lat"`
	Lng      float64 `form:"lng" json:"lng"`
	HasGeo   bool    `form:"-" json:"-"`
	RadiusKm float64 `form:"radiusInKm" json:"radiusInKm"`
	Category string  `form:"category" json:"category"`
	Page     int     `form:"page" json:"page"`
	Limit    int     `form:"limit" json:"limit"`
}

// SearchResultItem is one ranked candidate service.
type SearchResultItem struct {
	Service Service `bson:",inline" json:"service"`

	// DistanceMeters is set when the geo stage ran; Score when the
	// semantic stage ran. Zero values mean the signal was absent.
	DistanceMeters float64 `bson:"distance,omitempty" json:"distanceMeters,omitempty"`
	Score          float64 `bson:"score,omitempty" json:"score,omitempty"`
}

// SearchResult is the paginated, fully ranked and filtered result set.
type SearchResult struct {
	Items      []SearchResultItem `json:"items"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
}
