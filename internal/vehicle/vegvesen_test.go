package vehicle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moto-backoffice/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deepPayload = `{
	"kjoretoydataListe": [{
		"kjoretoyId": {"kjennemerke": "AB12345", "understellsnummer": "JH2SC5700XM200123"},
		"forstegangsregistrering": {"registrertForstegangNorgeDato": "2019-04-12"},
		"godkjenning": {
			"tekniskGodkjenning": {
				"tekniskeData": {
					"generelt": {
						"merke": [{"merke": "HONDA"}],
						"handelsbetegnelse": ["CB500X"]
					}
				}
			}
		}
	}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", nil, time.Minute)
}

func TestLookup(t *testing.T) {
	t.Run("extracts the deep registry shape", func(t *testing.T) {
		var gotAuth, gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("SVV-Authorization")
			gotQuery = r.URL.Query().Get("kjennemerke")
			w.Write([]byte(deepPayload))
		})

		info, err := client.Lookup(context.Background(), &dto.LookupVehicleRequest{LicensePlate: "ab 12345"})
		require.NoError(t, err)

		assert.Equal(t, "Apikey test-key", gotAuth)
		assert.Equal(t, "AB12345", gotQuery)
		assert.Equal(t, &dto.VehicleInfo{
			LicensePlate: "AB12345",
			VIN:          "JH2SC5700XM200123",
			Make:         "HONDA",
			Model:        "CB500X",
			ModelYear:    "2019",
		}, info)
	})

	t.Run("falls back to the flat shape", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"make": "Yamaha", "year": "2001", "vin": "JYARN181000012345"}`))
		})

		info, err := client.Lookup(context.Background(), &dto.LookupVehicleRequest{LicensePlate: "CD67890"})
		require.NoError(t, err)
		assert.Equal(t, "Yamaha", info.Make)
		assert.Equal(t, "2001", info.ModelYear)
		assert.Equal(t, "JYARN181000012345", info.VIN)
	})

	t.Run("unknown plate maps to ErrNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Lookup(context.Background(), &dto.LookupVehicleRequest{LicensePlate: "ZZ99999"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty payload maps to ErrNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := client.Lookup(context.Background(), &dto.LookupVehicleRequest{LicensePlate: "EF11111"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("server error is not swallowed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.Lookup(context.Background(), &dto.LookupVehicleRequest{LicensePlate: "GH22222"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestLookup_EmptyPlate(t *testing.T) {
	client := NewClient("http://localhost", "key", nil, time.Minute)
	_, err := client.Lookup(context.Background(), &dto.LookupVehicleRequest{LicensePlate: "  "})
	assert.Error(t, err)
}
