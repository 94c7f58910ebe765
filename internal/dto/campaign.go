package dto

import "time"

type CreateCampaignRequestDTO struct {
	Name        string `json:"name" example:"Beneficiary Name"`
	URL         string `json:"url" example:"beneficiary.org"`
	ImageURL    string `json:"imageURL" example:"https://placekitten.com/200/300"`
	Description string `json:"description" example:"Beneficiary Description"`
	// Payout account number; must pass the Luhn check.
	Beneficiary string `json:"beneficiary" example:"79927398713"`
}

type ProfileResponseDTO struct {
	Address     string    `json:"address" example:"2b9f8a4e-6c1d-4a57-9d0e-3f1c2b7a8e90"`
	Name        string    `json:"name" example:"Beneficiary Name"`
	URL         string    `json:"url" example:"beneficiary.org"`
	ImageURL    string    `json:"imageURL" example:"https://placekitten.com/200/300"`
	Description string    `json:"description" example:"Beneficiary Description"`
	Owner       string    `json:"owner" example:"2377225624"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type CampaignResponseDTO struct {
	ProfileResponseDTO
	Beneficiary    string `json:"beneficiary" example:"79927398713"`
	Balance        uint64 `json:"balance" example:"289"`
	TotalDonations uint64 `json:"totalDonations" example:"289"`
	DonationsCount uint64 `json:"donationsCount" example:"1"`
}

type CountResponseDTO struct {
	Count uint64 `json:"count" example:"30"`
}
