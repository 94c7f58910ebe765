package dto

import "time"

type SetBeneficiaryRequestDTO struct {
	// Payout account number; must pass the Luhn check.
	Beneficiary string `json:"beneficiary" example:"2377225624"`
}

type DonateRequestDTO struct {
	Value uint64 `json:"value" example:"289"`
}

type DonationResponseDTO struct {
	Value uint64    `json:"value" example:"289"`
	Date  time.Time `json:"date" example:"2020-12-09T16:09:57+03:00"`
}

type MyDonationsResponseDTO struct {
	Values []uint64    `json:"values" example:"289,5"`
	Dates  []time.Time `json:"dates"`
}

type WithdrawResponseDTO struct {
	Beneficiary string `json:"beneficiary" example:"79927398713"`
	Amount      uint64 `json:"amount" example:"289"`
	Reference   string `json:"reference,omitempty" example:"0f3e5bb6-0c8f-4b8e-a1f4-6a3b6f6a2d11"`
}

type WithdrawalResponseDTO struct {
	Beneficiary string    `json:"beneficiary" example:"79927398713"`
	Amount      uint64    `json:"amount" example:"289"`
	Reference   string    `json:"reference" example:"0f3e5bb6-0c8f-4b8e-a1f4-6a3b6f6a2d11"`
	ProcessedAt time.Time `json:"processed_at" example:"2020-12-09T16:09:57+03:00"`
}
