// Package vehicle looks up registration data from the Statens vegvesen open
// API so the bike form can be filled from a license plate alone.
package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moto-backoffice/internal/services"
	"moto-backoffice/internal/transport/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when the registry has no vehicle for the plate.
var ErrNotFound = errors.New("vehicle not found in registry")

// Client resolves license plates against the registry, caching each answer
// in Redis so repeated form fills do not burn through the API quota.
type Client struct {
	httpClient *http.Client
	cache      *redis.Client
	baseURL    string
	apiKey     string
	cacheTTL   time.Duration
}

var _ services.VehicleLookupService = (*Client)(nil)

// NewClient creates a registry client. cache may be nil, in which case every
// lookup goes to the API.
func NewClient(baseURL, apiKey string, cache *redis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		baseURL:    baseURL,
		apiKey:     apiKey,
		cacheTTL:   cacheTTL,
	}
}

func (c *Client) Lookup(ctx context.Context, req *dto.LookupVehicleRequest) (*dto.VehicleInfo, error) {
	plate := strings.ToUpper(strings.ReplaceAll(req.LicensePlate, " ", ""))
	if plate == "" {
		return nil, fmt.Errorf("empty license plate")
	}

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey(plate)).Result()
		if err == nil {
			var info dto.VehicleInfo
			if err := json.Unmarshal([]byte(cached), &info); err == nil {
				return &info, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("vehicle cache read failed, falling back to registry")
		}
	}

	info, err := c.fetch(ctx, plate)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		raw, err := json.Marshal(info)
		if err == nil {
			if err := c.cache.Set(ctx, cacheKey(plate), raw, c.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("vehicle cache write failed")
			}
		}
	}
	return info, nil
}

func (c *Client) fetch(ctx context.Context, plate string) (*dto.VehicleInfo, error) {
	url := fmt.Sprintf("%s?kjennemerke=%s", c.baseURL, plate)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry request: %w", err)
	}
	httpReq.Header.Set("SVV-Authorization", "Apikey "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("registry returned error")
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}
	info := extract(payload, plate)
	if info.VIN == "" && info.Make == "" && info.Model == "" {
		return nil, ErrNotFound
	}
	return info, nil
}

// extract digs the interesting fields out of the registry payload. The deep
// paths match the kjoretoydata response shape; the shallow fallbacks cover
// the older flat shape some mirrors still return.
func extract(payload map[string]any, plate string) *dto.VehicleInfo {
	info := &dto.VehicleInfo{LicensePlate: plate}

	entry := firstListEntry(payload, "kjoretoydataListe")
	if entry != nil {
		if vin := dig(entry, "kjoretoyId", "understellsnummer"); vin != "" {
			info.VIN = vin
		}
		godkjenning, _ := entry["godkjenning"].(map[string]any)
		if godkjenning != nil {
			generelt, _ := digMap(godkjenning, "tekniskGodkjenning", "tekniskeData", "generelt")
			if generelt != nil {
				if merke := firstListEntry(generelt, "merke"); merke != nil {
					info.Make, _ = merke["merke"].(string)
				}
				if handel, ok := generelt["handelsbetegnelse"].([]any); ok && len(handel) > 0 {
					info.Model, _ = handel[0].(string)
				}
			}
		}
		if dato := dig(entry, "forstegangsregistrering", "registrertForstegangNorgeDato"); dato != "" {
			if len(dato) >= 4 {
				info.ModelYear = dato[:4]
			}
		}
	}

	// Flat fallbacks.
	if info.Make == "" {
		info.Make, _ = payload["make"].(string)
	}
	if info.ModelYear == "" {
		info.ModelYear, _ = payload["year"].(string)
	}
	if info.VIN == "" {
		info.VIN, _ = payload["vin"].(string)
	}
	return info
}

func firstListEntry(m map[string]any, key string) map[string]any {
	list, ok := m[key].([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	entry, _ := list[0].(map[string]any)
	return entry
}

func digMap(m map[string]any, keys ...string) (map[string]any, bool) {
	cur := m
	for _, key := range keys {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func dig(m map[string]any, keys ...string) string {
	parent, ok := digMap(m, keys[:len(keys)-1]...)
	if !ok {
		return ""
	}
	s, _ := parent[keys[len(keys)-1]].(string)
	return s
}

func cacheKey(plate string) string {
	return "vehicle:" + plate
}
