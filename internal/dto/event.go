package dto

import (
	"encoding/json"
	"time"
)

type EventResponseDTO struct {
	ID        int64           `json:"id" example:"1"`
	Seq       int64           `json:"seq" example:"1"`
	Type      string          `json:"type" example:"DonationReceived"`
	Campaign  string          `json:"campaign" example:"2b9f8a4e-6c1d-4a57-9d0e-3f1c2b7a8e90"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
