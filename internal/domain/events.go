package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventType string

const (
	EventCampaignCreated    EventType = "CampaignCreated"
	EventDonationReceived   EventType = "DonationReceived"
	EventWithdraw           EventType = "Withdraw"
	EventBeneficiaryChanged EventType = "BeneficiaryChanged"
)

// Event.Seq is the position in the observer log. It is assigned after the
// writing transaction has finished, so it follows commit order and has no gaps.
type Event struct {
	ID              int64      `db:"id"`
	Seq             int64      `db:"seq"`
	Type            EventType  `db:"type"`
	CampaignAddress string     `db:"campaign_address"`
	Payload         []byte     `db:"payload"`
	CreatedAt       time.Time  `db:"created_at"`
	DispatchedAt    *time.Time `db:"dispatched_at"`
}

// Payload field names are consumed by external indexers and must stay stable.

type CampaignCreated struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageURL"`
	Description string `json:"description"`
	Beneficiary string `json:"beneficiary"`
}

type DonationReceived struct {
	Donor string `json:"donor"`
	Value uint64 `json:"value"`
}

type Withdraw struct {
	Amount uint64 `json:"amount"`
}

type BeneficiaryChanged struct {
	Beneficiary string `json:"beneficiary"`
}

func NewEvent(eventType EventType, campaignAddress string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("can't encode %s payload: %w", eventType, err)
	}
	return &Event{
		Type:            eventType,
		CampaignAddress: campaignAddress,
		Payload:         data,
		CreatedAt:       time.Now(),
	}, nil
}
