package dto

type AttractionsQuery struct {
	Lat      *float64 `form:"lat" binding:"required,latitude"`
	Lon      *float64 `form:"lon" binding:"required,longitude"`
	Radius   uint     `form:"radius" binding:"omitempty,min=1,max=50000"`
	Language string   `form:"language" binding:"omitempty,max=16"`
}

type AttractionResponse struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	DistanceKm     float64 `json:"distance_km"`
	BearingDegrees int     `json:"bearing_degrees"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
