// Package payment hands committed refunds to the execution host for payout.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

const requestTimeout = 10 * time.Second

// payoutRequest is the wire form of a transfer instruction.
type payoutRequest struct {
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
}

// HostPaymentGateway delivers payout instructions to the execution host's
// transfer endpoint. A non-2xx reply is reported as an error so the dispatch
// job keeps the transfer pending and retries.
type HostPaymentGateway struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewHostPaymentGateway creates a gateway that posts payouts to the given endpoint.
func NewHostPaymentGateway(endpoint string, logger *slog.Logger) *HostPaymentGateway {
	return &HostPaymentGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
		logger:   logger.With("component", "payment_gateway"),
	}
}

// Transfer instructs the host to pay the beneficiary.
func (g *HostPaymentGateway) Transfer(ctx context.Context, beneficiary kernel.AccountID, amount kernel.Money) error {
	body, err := json.Marshal(payoutRequest{
		Beneficiary: beneficiary.String(),
		Amount:      amount.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode payout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build payout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("payout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("payout rejected with status %d", resp.StatusCode)
	}

	g.logger.InfoContext(ctx, "Payout dispatched",
		"beneficiary", beneficiary.String(),
		"amount", amount.String(),
	)
	return nil
}
