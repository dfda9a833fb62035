package epc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_LookupEnergyRating(t *testing.T) {
	t.Run("missing credentials fall back to estimate", func(t *testing.T) {
		client := &Client{
			HTTPClient: http.DefaultClient,
			BaseURL:    "http://127.0.0.1:1", // must never be hit
		}

		result := client.LookupEnergyRating(context.Background(), "M14 5RB", "", "TERRACED")

		require.Equal(t, SourceEstimate, result.Source)
		require.Equal(t, ConfidenceLow, result.Confidence)
		require.Equal(t, "D", result.Rating)
	})

	t.Run("live lookup prefers the matching address", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NotEmpty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"rows":[
				{"current-energy-rating":"C","address":"1 Mill Road"},
				{"current-energy-rating":"F","address":"12 Mill Road"}
			]}`))
		}))
		defer server.Close()

		client := &Client{
			HTTPClient: server.Client(),
			BaseURL:    server.URL,
			Email:      "test@example.com",
			APIKey:     "key",
		}

		result := client.LookupEnergyRating(context.Background(), "M14 5RB", "12 Mill Road", "TERRACED")

		require.Equal(t, SourceAPI, result.Source)
		require.Equal(t, ConfidenceHigh, result.Confidence)
		require.Equal(t, "F", result.Rating)
		require.NotEmpty(t, result.Recommendations)
	})

	t.Run("postcode-only match is medium confidence", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rows":[{"current-energy-rating":"C","address":"1 Mill Road"}]}`))
		}))
		defer server.Close()

		client := &Client{
			HTTPClient: server.Client(),
			BaseURL:    server.URL,
			Email:      "test@example.com",
			APIKey:     "key",
		}

		result := client.LookupEnergyRating(context.Background(), "M14 5RB", "", "TERRACED")

		require.Equal(t, ConfidenceMedium, result.Confidence)
		require.Equal(t, "C", result.Rating)
	})

	t.Run("non-200 response falls back to estimate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := &Client{
			HTTPClient: server.Client(),
			BaseURL:    server.URL,
			Email:      "test@example.com",
			APIKey:     "key",
		}

		result := client.LookupEnergyRating(context.Background(), "M14 5RB", "", "FLAT")

		require.Equal(t, SourceEstimate, result.Source)
		require.Equal(t, "C", result.Rating)
	})

	t.Run("unreachable server never errors", func(t *testing.T) {
		client := &Client{
			HTTPClient: &http.Client{Timeout: 100 * time.Millisecond},
			BaseURL:    "http://127.0.0.1:1",
			Email:      "test@example.com",
			APIKey:     "key",
		}

		result := client.LookupEnergyRating(context.Background(), "M14 5RB", "", "BUNGALOW")

		require.Equal(t, SourceEstimate, result.Source)
		require.Equal(t, "E", result.Rating)
	})
}
