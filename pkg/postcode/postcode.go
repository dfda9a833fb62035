// Package postcode resolves UK postcodes to administrative regions via
// postcodes.io. Resolution failure is communicated by a nil result, not
// an error - callers substitute a neutral rent multiplier.
package postcode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"propfolio/internal/logger"
)

const defaultBaseURL = "https://api.postcodes.io/postcodes"

type Region struct {
	Region        string `json:"region"`
	AdminDistrict string `json:"adminDistrict"`
}

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

type lookupResponse struct {
	Status int `json:"status"`
	Result struct {
		Region        string `json:"region"`
		AdminDistrict string `json:"admin_district"`
	} `json:"result"`
}

// ResolveRegion returns nil when the postcode can't be resolved.
func (c *Client) ResolveRegion(ctx context.Context, postcode string) *Region {
	region, err := c.fetch(ctx, postcode)
	if err != nil {
		logger.FromContext(ctx).Warnw("postcode resolution failed",
			"postcode", postcode, "error", err)
		return nil
	}
	return region
}

func (c *Client) fetch(ctx context.Context, postcode string) (*Region, error) {
	reqURL := fmt.Sprintf("%s/%s", c.BaseURL, url.PathEscape(postcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := lookupResponse{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return nil, err
	}
	if responseBody.Result.Region == "" {
		return nil, fmt.Errorf("no region returned for %s", postcode)
	}

	return &Region{
		Region:        responseBody.Result.Region,
		AdminDistrict: responseBody.Result.AdminDistrict,
	}, nil
}
