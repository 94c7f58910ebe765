package domain

import "time"

// PageCap bounds every registry page regardless of the requested limit.
const PageCap = 20

// Profile holds the fields of a campaign that never change after creation.
type Profile struct {
	ID          int64     `db:"id"`
	Address     string    `db:"address"`
	Name        string    `db:"name"`
	URL         string    `db:"url"`
	ImageURL    string    `db:"image_url"`
	Description string    `db:"description"`
	Owner       string    `db:"owner"`
	CreatedAt   time.Time `db:"created_at"`
}

type Campaign struct {
	Profile
	// Beneficiary is the payout account number withdrawals are sent to.
	// Handlers accept only numbers that pass the Luhn check.
	Beneficiary    string `db:"beneficiary"`
	Balance        uint64 `db:"balance"`
	TotalDonations uint64 `db:"total_donations"`
	DonationsCount uint64 `db:"donations_count"`
}

type Donation struct {
	ID         int64     `db:"id"`
	CampaignID int64     `db:"campaign_id"`
	Donor      string    `db:"donor"`
	Value      uint64    `db:"value"`
	CreatedAt  time.Time `db:"created_at"`
}

type Withdrawal struct {
	ID          int64     `db:"id"`
	CampaignID  int64     `db:"campaign_id"`
	Beneficiary string    `db:"beneficiary"`
	Amount      uint64    `db:"amount"`
	Reference   string    `db:"reference"`
	ProcessedAt time.Time `db:"processed_at"`
}
