package postcard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RyanHagen77/dwella-app-sub003/internal/verification"
)

// Client talks to the postal-mail provider that prints and ships
// verification postcards. It satisfies verification.Postcards.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type sendPayload struct {
	HomeID       string `json:"home_id"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Message      string `json:"message"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// SendCode asks the provider to mail the code to the home's address and
// returns the provider-assigned mailing id.
func (c *Client) SendCode(ctx context.Context, req verification.PostcardRequest) (string, error) {
	payload := sendPayload{
		HomeID:       req.HomeID.String(),
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Message:      fmt.Sprintf("Your Dwella verification code is %s. Enter it at dwella to verify your home address.", req.Code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding postcard payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/postcards", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code %d from postcard provider", resp.StatusCode)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding provider response: %w", err)
	}

	if result.ID == "" {
		return "", fmt.Errorf("postcard provider returned no mailing id")
	}

	return result.ID, nil
}
