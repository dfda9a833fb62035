package postcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_ResolveRegion(t *testing.T) {
	t.Run("resolves region and district", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":200,"result":{"region":"North West","admin_district":"Manchester"}}`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}

		region := client.ResolveRegion(context.Background(), "M14 5RB")

		require.NotNil(t, region)
		require.Equal(t, "North West", region.Region)
		require.Equal(t, "Manchester", region.AdminDistrict)
	})

	t.Run("unknown postcode returns nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":404,"error":"Postcode not found"}`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}

		require.Nil(t, client.ResolveRegion(context.Background(), "ZZ1 1ZZ"))
	})

	t.Run("network failure returns nil", func(t *testing.T) {
		client := &Client{
			HTTPClient: &http.Client{Timeout: 100 * time.Millisecond},
			BaseURL:    "http://127.0.0.1:1",
		}

		require.Nil(t, client.ResolveRegion(context.Background(), "M14 5RB"))
	})
}
