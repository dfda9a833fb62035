// Package epc looks up domestic energy ratings from the EPC open data
// register, degrading to a property-type estimate when the register is
// unreachable. Lookups never return an error - the fallback result
// carries a low confidence marker instead.
package epc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"propfolio/internal/data"
	"propfolio/internal/logger"
)

const (
	SourceAPI      = "api"
	SourceEstimate = "estimate"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const defaultBaseURL = "https://epc.opendatacommunities.org/api/v1/domestic/search"

type Result struct {
	Rating          string   `json:"rating"`
	Confidence      string   `json:"confidence"`
	Source          string   `json:"source"`
	Recommendations []string `json:"recommendations,omitempty"`
}

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Email      string
	APIKey     string
}

// NewClient reads EPC_API_EMAIL and EPC_API_KEY from the environment.
// Missing credentials are fine - every lookup just falls back to an
// estimate.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    defaultBaseURL,
		Email:      os.Getenv("EPC_API_EMAIL"),
		APIKey:     os.Getenv("EPC_API_KEY"),
	}
}

type searchResponse struct {
	Rows []struct {
		CurrentEnergyRating string `json:"current-energy-rating"`
		Address             string `json:"address"`
	} `json:"rows"`
}

// LookupEnergyRating attempts a live register lookup for the postcode,
// preferring a row whose address contains addressLine. One attempt, no
// retries - any failure falls straight back to the estimate table.
func (c *Client) LookupEnergyRating(ctx context.Context, postcode, addressLine, propertyType string) Result {
	rating, err := c.fetchRating(ctx, postcode, addressLine)
	if err != nil {
		logger.FromContext(ctx).Warnw("epc lookup failed, using estimate",
			"postcode", postcode, "error", err)
		return estimate(propertyType)
	}

	confidence := ConfidenceHigh
	if addressLine == "" {
		// a postcode-only match may be a neighbour's certificate
		confidence = ConfidenceMedium
	}
	return Result{
		Rating:          rating,
		Confidence:      confidence,
		Source:          SourceAPI,
		Recommendations: recommendationsFor(rating),
	}
}

func (c *Client) fetchRating(ctx context.Context, postcode, addressLine string) (string, error) {
	if c.Email == "" || c.APIKey == "" {
		return "", fmt.Errorf("no EPC register credentials configured")
	}

	reqURL := fmt.Sprintf("%s?postcode=%s&size=25", c.BaseURL, url.QueryEscape(postcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	token := base64.StdEncoding.EncodeToString([]byte(c.Email + ":" + c.APIKey))
	req.Header.Set("Authorization", "Basic "+token)
	req.Header.Set("Accept", "application/json")

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return "", fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := searchResponse{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return "", err
	}
	if len(responseBody.Rows) == 0 {
		return "", fmt.Errorf("no certificates found for %s", postcode)
	}

	if addressLine != "" {
		needle := strings.ToLower(addressLine)
		for _, row := range responseBody.Rows {
			if strings.Contains(strings.ToLower(row.Address), needle) {
				return row.CurrentEnergyRating, nil
			}
		}
	}
	return responseBody.Rows[0].CurrentEnergyRating, nil
}

func estimate(propertyType string) Result {
	rating, ok := data.EPCEstimateByPropertyType[propertyType]
	if !ok {
		rating = "D"
	}
	return Result{
		Rating:          rating,
		Confidence:      ConfidenceLow,
		Source:          SourceEstimate,
		Recommendations: recommendationsFor(rating),
	}
}

func recommendationsFor(rating string) []string {
	switch rating {
	case "F", "G":
		return []string{
			"Property cannot legally be let until improved to at least EPC E",
			"Obtain improvement cost quotes before exchange",
		}
	case "E":
		return []string{
			"Budget for energy improvements - the minimum standard is expected to rise to C",
		}
	case "D":
		return []string{
			"Consider loft insulation or heating upgrades to reach C",
		}
	}
	return nil
}
