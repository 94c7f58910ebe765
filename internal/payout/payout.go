package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/config"
	"github.com/GlebRadaev/fundraiser/pkg/clients"
)

const transfersPath = "/api/transfers"

type TransferRequest struct {
	Beneficiary string `json:"beneficiary"`
	Amount      uint64 `json:"amount"`
	Reference   string `json:"reference"`
}

// Client hands withdrawn funds to the external payout system. Each transfer is
// attempted once; the reference doubles as the idempotency key.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.PayoutAddress,
		client: client,
	}
}

func (c *Client) Transfer(ctx context.Context, beneficiary string, amount uint64, reference string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(TransferRequest{
		Beneficiary: beneficiary,
		Amount:      amount,
		Reference:   reference,
	})
	if err != nil {
		return fmt.Errorf("failed to encode transfer: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Idempotency-Key", reference)

	statusCode, respBody, _, err := c.client.Post(c.url+transfersPath, headers, body)
	if err != nil {
		zap.L().Error("payout system unreachable", zap.String("reference", reference), zap.Error(err))
		return fmt.Errorf("payout request failed: %w", err)
	}

	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		zap.L().Info("transfer accepted",
			zap.String("beneficiary", beneficiary),
			zap.Uint64("amount", amount),
			zap.String("reference", reference),
		)
		return nil
	default:
		zap.L().Error("transfer rejected",
			zap.Int("status", statusCode),
			zap.String("reference", reference),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("payout system responded with status %d", statusCode)
	}
}
