// File: /services/vin_lookup.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"collateral-api/config"
)

// VinLookupResult is what an external pricing provider knows about a VIN.
// EstimatedValue may be zero when the provider has vehicle data but no
// market price for it.
type VinLookupResult struct {
	EstimatedValue float64
	Make           string
	Model          string
	Year           int
	Trim           string
}

// VinLookupClient is the pluggable external valuation capability. Lookup
// makes a single attempt; on any failure it returns ErrVinLookupUnavailable
// and the caller decides whether to fall back or surface not-found.
type VinLookupClient interface {
	Lookup(ctx context.Context, vin string) (*VinLookupResult, error)
}

// RapidAPIVinClient queries the vin-lookup2 RapidAPI endpoint.
type RapidAPIVinClient struct {
	client  *http.Client
	baseURL string
	host    string
	apiKey  string
	logger  *zap.Logger
}

func NewRapidAPIVinClient(cfg *config.Config, logger *zap.Logger) *RapidAPIVinClient {
	timeout := time.Duration(cfg.VinLookupTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RapidAPIVinClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.VinLookupURL,
		host:    cfg.VinLookupHost,
		apiKey:  cfg.RapidAPIKey,
		logger:  logger,
	}
}

type vinLookupResponse struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Trim         string  `json:"trim"`
	RetailValue  float64 `json:"retail_value"`
	TradeInValue float64 `json:"trade_in_value"`
}

func (c *RapidAPIVinClient) Lookup(ctx context.Context, vin string) (*VinLookupResult, error) {
	if c.apiKey == "" {
		return nil, ErrVinLookupUnavailable
	}

	reqURL := fmt.Sprintf("%s?vin=%s", c.baseURL, url.QueryEscape(vin))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, ErrVinLookupUnavailable
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("vin lookup request failed", zap.String("vin", vin), zap.Error(err))
		return nil, ErrVinLookupUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("vin lookup returned non-200", zap.String("vin", vin), zap.Int("status", resp.StatusCode))
		return nil, ErrVinLookupUnavailable
	}

	var body vinLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("vin lookup response malformed", zap.String("vin", vin), zap.Error(err))
		return nil, ErrVinLookupUnavailable
	}

	// An empty payload is the provider's not-found signal.
	if body.Make == "" && body.Model == "" && body.Year == 0 {
		return nil, ErrVinLookupUnavailable
	}

	value := body.RetailValue
	if value <= 0 {
		value = body.TradeInValue
	}

	return &VinLookupResult{
		EstimatedValue: value,
		Make:           body.Make,
		Model:          body.Model,
		Year:           body.Year,
		Trim:           body.Trim,
	}, nil
}
