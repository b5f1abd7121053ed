package batchclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	goJson "github.com/goccy/go-json"
)

// Client submits batches to a running processor in server mode.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

type BrandTotal struct {
	Brand  string `json:"brand"`
	Amount string `json:"amount"`
}

type Totals struct {
	BatchID       string       `json:"batch_id"`
	TotalPayments int          `json:"total_payments"`
	TotalAmount   string       `json:"total_amount"`
	Brands        []BrandTotal `json:"brands"`
}

// SubmitReport posts a CSV batch and returns the plain-text report.
func (c *Client) SubmitReport(ctx context.Context, batch []byte) (string, error) {
	resp, err := c.submit(ctx, batch, "text/plain")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(b), nil
}

// SubmitTotals posts a CSV batch and decodes the JSON totals.
func (c *Client) SubmitTotals(ctx context.Context, batch []byte) (*Totals, error) {
	resp, err := c.submit(ctx, batch, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var totals Totals
	if err := goJson.NewDecoder(resp.Body).Decode(&totals); err != nil {
		return nil, fmt.Errorf("decode totals: %w", err)
	}
	return &totals, nil
}

func (c *Client) submit(ctx context.Context, batch []byte, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/batches", bytes.NewReader(batch))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Accept", accept)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit batch: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("submit batch status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}
