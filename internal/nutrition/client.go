// Package nutrition looks up macronutrient facts for a free-text food
// description using the Nutritionix natural-language nutrients API.
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/piwi3910/fitness-tracker/internal/model"
)

// ErrMissingCredentials is returned before any request is made when the
// app id or key has not been configured.
var ErrMissingCredentials = fmt.Errorf("%w: nutrition API credentials are not configured", model.ErrExternalLookup)

// Client issues nutrient lookups. The zero value is not usable; use New.
type Client struct {
	endpoint string
	appID    string
	appKey   string
	http     *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a Client from the application config. Credentials come from
// the config, which in turn is overlaid from the environment.
func New(cfg model.AppConfig, opts ...Option) *Client {
	endpoint := cfg.NutritionEndpoint
	if endpoint == "" {
		endpoint = model.DefaultNutritionEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		appID:    cfg.NutritionAppID,
		appKey:   cfg.NutritionAppKey,
		http:     &http.Client{Timeout: cfg.LookupTimeout()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type nutrientsRequest struct {
	Query string `json:"query"`
}

type nutrientsResponse struct {
	Foods []struct {
		FoodName   string   `json:"food_name"`
		Calories   *float64 `json:"nf_calories"`
		Protein    *float64 `json:"nf_protein"`
		TotalFat   *float64 `json:"nf_total_fat"`
		TotalCarbs *float64 `json:"nf_total_carbohydrate"`
	} `json:"foods"`
}

// Lookup sends one query and returns the facts for the first matched food.
// Any non-200 status or an empty result is reported as model.ErrExternalLookup.
func (c *Client) Lookup(ctx context.Context, query string) (Facts, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Facts{}, &model.ParseError{Field: "Food Name", Reason: "please enter a food name"}
	}
	if c.appID == "" || c.appKey == "" {
		return Facts{}, ErrMissingCredentials
	}

	body, err := json.Marshal(nutrientsRequest{Query: query})
	if err != nil {
		return Facts{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Facts{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.appKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[nutrition] request for %q failed: %v", query, err)
		return Facts{}, fmt.Errorf("%w: %w", model.ErrExternalLookup, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Facts{}, fmt.Errorf("%w: read response: %v", model.ErrExternalLookup, err)
	}
	log.Printf("[nutrition] %q -> %d in %s", query, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		return Facts{}, &StatusError{Code: resp.StatusCode, Body: string(respBytes)}
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(respBytes, &nr); err != nil {
		return Facts{}, fmt.Errorf("%w: parse response: %v", model.ErrExternalLookup, err)
	}
	if len(nr.Foods) == 0 {
		return Facts{}, fmt.Errorf("%w: no foods matched %q", model.ErrExternalLookup, query)
	}

	f := nr.Foods[0]
	return Facts{
		Query:    query,
		FoodName: f.FoodName,
		Calories: f.Calories,
		Protein:  f.Protein,
		Fat:      f.TotalFat,
		Carbs:    f.TotalCarbs,
	}, nil
}

// StatusError is a non-200 reply from the nutrition API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch data (status %d): check your API keys or food name", e.Code)
}

// Is matches model.ErrExternalLookup.
func (e *StatusError) Is(target error) bool {
	return target == model.ErrExternalLookup
}

// IsAuthError reports whether err is a 401 or 403 from the API.
func IsAuthError(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden
}

// IsTimeout reports whether err came from the request deadline or the HTTP
// client timeout, whichever fired first.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
