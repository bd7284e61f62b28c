package dto

type CreateAttractionRequest struct {
	TripID string      `json:"trip_id" validate:"required"`
	Stop   StopPayload `json:"stop" validate:"required"`
}

type ListAttractionsResponse struct {
	Attractions []StopPayload `json:"attractions"`
}
