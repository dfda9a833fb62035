package floodrisk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_LookupFloodRisk(t *testing.T) {
	t.Run("active warning in the area", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[
				{"description":"River Ouse at York city centre","severityLevel":2,"floodArea":{"county":"York"}},
				{"description":"River Severn at Shrewsbury","severityLevel":4,"floodArea":{"county":"Shropshire"}}
			]}`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}

		result := client.LookupFloodRisk(context.Background(), "YO1 7HH")

		require.True(t, result.HasActiveWarnings)
		require.Equal(t, ZoneHigh, result.Zone)
		require.Equal(t, ConfidenceHigh, result.Confidence)
		require.Len(t, result.Warnings, 1)
	})

	t.Run("severity 4 warnings are no longer in force", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[
				{"description":"River Ouse at York","severityLevel":4,"floodArea":{"county":"York"}}
			]}`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}

		result := client.LookupFloodRisk(context.Background(), "YO1 7HH")

		require.False(t, result.HasActiveWarnings)
		// still a flood-prone prefix
		require.Equal(t, ZoneMedium, result.Zone)
	})

	t.Run("clean feed and unlisted prefix is low risk", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}

		result := client.LookupFloodRisk(context.Background(), "TQ12 4AB")

		require.False(t, result.HasActiveWarnings)
		require.Equal(t, ZoneLow, result.Zone)
		require.Equal(t, ConfidenceHigh, result.Confidence)
	})

	t.Run("feed failure falls back to the prefix table", func(t *testing.T) {
		client := &Client{
			HTTPClient: &http.Client{Timeout: 100 * time.Millisecond},
			BaseURL:    "http://127.0.0.1:1",
		}

		result := client.LookupFloodRisk(context.Background(), "YO1 7HH")
		require.Equal(t, ZoneMedium, result.Zone)
		require.Equal(t, ConfidenceMedium, result.Confidence)

		result = client.LookupFloodRisk(context.Background(), "TQ12 4AB")
		require.Equal(t, ZoneLow, result.Zone)
		require.Equal(t, ConfidenceLow, result.Confidence)
	})
}
