package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// FallbackUFValue is the last widely published UF value, used when no
// endpoint is configured or the endpoint is unreachable. The engine itself
// never fetches anything; this client exists so the console and web modes can
// refresh the daily value before calling it.
const FallbackUFValue = 39643.0

// ufCacheTTL matches the daily cadence of the indicator; refetching more
// often than hourly buys nothing.
const ufCacheTTL = time.Hour

// ufSerieResponse models the findic.cl-style indicator payload:
// {"serie": [{"fecha": "2025-11-19", "valor": 39643.59}, ...]}
// with the most recent value first.
type ufSerieResponse struct {
	Serie []struct {
		Fecha string  `json:"fecha"`
		Valor float64 `json:"valor"`
	} `json:"serie"`
}

// UFQuote is a dated UF value together with where it came from.
type UFQuote struct {
	Value  float64 `json:"uf"`
	Date   string  `json:"fecha"`
	Source string  `json:"source"` // Endpoint host, "config", or "fallback"
}

// UFClient fetches the daily UF value with an in-process cache and a
// fallback chain: endpoint, then configured value, then FallbackUFValue.
type UFClient struct {
	endpoint   string
	configured float64 // From config; 0 means unset
	httpClient *http.Client

	mu       sync.Mutex
	cached   UFQuote
	cachedAt time.Time
}

// NewUFClient creates a UF client for the given endpoint. An empty endpoint
// disables fetching and the client always answers from config or fallback.
func NewUFClient(endpoint string, configuredValue float64) *UFClient {
	return &UFClient{
		endpoint:   endpoint,
		configured: configuredValue,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current returns the UF value to use right now. It never fails: when the
// endpoint is unreachable it degrades to the configured value, then to the
// published fallback, flagging the source accordingly.
func (c *UFClient) Current() UFQuote {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cachedAt.IsZero() && time.Since(c.cachedAt) < ufCacheTTL {
		return c.cached
	}

	if c.endpoint != "" {
		quote, err := c.fetch()
		if err == nil {
			ufFetches.WithLabelValues("ok").Inc()
			c.cached = quote
			c.cachedAt = time.Now()
			return quote
		}
		ufFetches.WithLabelValues("error").Inc()
	}

	quote := UFQuote{Value: c.configured, Date: time.Now().Format("2006-01-02"), Source: "config"}
	if quote.Value <= 0 {
		quote.Value = FallbackUFValue
		quote.Source = "fallback"
	}

	// Cache the degraded answer too, so an unreachable endpoint is not
	// hammered on every recalculation.
	c.cached = quote
	c.cachedAt = time.Now()
	return quote
}

func (c *UFClient) fetch() (UFQuote, error) {
	resp, err := c.httpClient.Get(c.endpoint)
	if err != nil {
		return UFQuote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UFQuote{}, fmt.Errorf("uf endpoint returned status %d", resp.StatusCode)
	}

	var payload ufSerieResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return UFQuote{}, err
	}

	if len(payload.Serie) == 0 || payload.Serie[0].Valor <= 0 {
		return UFQuote{}, fmt.Errorf("uf endpoint returned an empty or invalid serie")
	}

	return UFQuote{
		Value:  payload.Serie[0].Valor,
		Date:   payload.Serie[0].Fecha,
		Source: c.endpoint,
	}, nil
}
