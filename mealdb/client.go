// Package mealdb is a minimal client for TheMealDB JSON API
// (https://www.themealdb.com/api.php). Only the random-meal lookup is
// implemented; requests are paced to respect the public rate limit.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/recipekg/recipekg/recipe"
)

// DefaultBaseURL is the free public API endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// DefaultFetchInterval is the pause between successive requests.
const DefaultFetchInterval = 500 * time.Millisecond

// Client fetches meal records over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a Client for the given endpoint. An empty baseURL
// selects DefaultBaseURL; a non-positive interval disables pacing.
func NewClient(baseURL string, interval time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// envelope is the response wrapper: a single-element "meals" array.
type envelope struct {
	Meals []recipe.Record `json:"meals"`
}

// RandomMeal fetches one random meal record. Each call waits out the
// configured interval before issuing its request.
func (c *Client) RandomMeal(ctx context.Context) (recipe.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/random.php", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("random.php returned status %s", resp.Status)
	}

	env := envelope{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding meal response: %w", err)
	}
	if len(env.Meals) == 0 || env.Meals[0] == nil {
		return nil, fmt.Errorf("response contained no meal")
	}
	return env.Meals[0], nil
}
