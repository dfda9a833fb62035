// Package floodrisk checks for active flood warnings via the
// Environment Agency's flood-monitoring feed. When the feed is
// unreachable it degrades to the fixed high-risk postcode table
// (medium confidence) or an assumed-low-risk default (low confidence).
// Lookups never return an error.
package floodrisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"propfolio/internal/data"
	"propfolio/internal/domain"
	"propfolio/internal/logger"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"

	ZoneLow    = "low"
	ZoneMedium = "medium"
	ZoneHigh   = "high"
)

const defaultBaseURL = "https://environment.data.gov.uk/flood-monitoring/id/floods"

type Result struct {
	Zone              string   `json:"zone"`
	HasActiveWarnings bool     `json:"hasActiveWarnings"`
	Warnings          []string `json:"warnings,omitempty"`
	Confidence        string   `json:"confidence"`
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

type floodsResponse struct {
	Items []struct {
		Description   string `json:"description"`
		SeverityLevel int    `json:"severityLevel"`
		FloodArea     struct {
			County string `json:"county"`
		} `json:"floodArea"`
	} `json:"items"`
}

// LookupFloodRisk checks the live warning feed for warnings naming the
// postcode's area. Severity levels 1-3 count as active (4 is "no
// longer in force"). A single failed attempt goes straight to the
// prefix-table fallback.
func (c *Client) LookupFloodRisk(ctx context.Context, postcode string) Result {
	area := domain.PostcodeArea(postcode)
	areaName, prone := data.FloodProneAreas[area]

	warnings, err := c.fetchWarnings(ctx, areaName)
	if err != nil {
		logger.FromContext(ctx).Warnw("flood warning feed unavailable, using prefix table",
			"postcode", postcode, "error", err)
		return fallback(prone)
	}

	if len(warnings) > 0 {
		return Result{
			Zone:              ZoneHigh,
			HasActiveWarnings: true,
			Warnings:          warnings,
			Confidence:        ConfidenceHigh,
		}
	}

	zone := ZoneLow
	if prone {
		zone = ZoneMedium
	}
	return Result{
		Zone:       zone,
		Confidence: ConfidenceHigh,
	}
}

func (c *Client) fetchWarnings(ctx context.Context, areaName string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?min-severity=3", nil)
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

	responseBody := floodsResponse{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return nil, err
	}

	if areaName == "" {
		return nil, nil
	}

	needle := strings.ToLower(areaName)
	warnings := []string{}
	for _, item := range responseBody.Items {
		if item.SeverityLevel > 3 {
			continue
		}
		if strings.Contains(strings.ToLower(item.FloodArea.County), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			warnings = append(warnings, item.Description)
		}
	}
	return warnings, nil
}

func fallback(prone bool) Result {
	if prone {
		return Result{
			Zone:       ZoneMedium,
			Confidence: ConfidenceMedium,
		}
	}
	return Result{
		Zone:       ZoneLow,
		Confidence: ConfidenceLow,
	}
}
