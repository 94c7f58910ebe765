package domain

import "errors"

var (
	ErrNotOwner         = errors.New("Ownable: caller is not the owner")
	ErrOutOfBounds      = errors.New("offset out of bounds")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTransferFailure  = errors.New("transfer to beneficiary failed")
	ErrCampaignNotFound = errors.New("campaign not found")
)
