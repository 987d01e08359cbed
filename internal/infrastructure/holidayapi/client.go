package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskcal/backend/domain"
)

const (
	defaultCountriesURL = "https://date.nager.at/api/v3/AvailableCountries"
	defaultHolidaysURL  = "https://date.nager.at/Api/v2/PublicHolidays"
)

// Client talks to a Nager.Date-shaped public holiday API. The upstream is
// treated as unreliable; callers degrade to an empty holiday set on error.
type Client struct {
	countriesURL string
	holidaysURL  string
	httpClient   *http.Client
}

// Config carries the upstream endpoints and the per-request timeout.
type Config struct {
	CountriesURL string
	HolidaysURL  string
	Timeout      time.Duration
}

// NewClient builds a Client, filling missing settings with the public
// Nager.Date endpoints and a 30 second timeout.
func NewClient(cfg Config) *Client {
	if cfg.CountriesURL == "" {
		cfg.CountriesURL = defaultCountriesURL
	}
	if cfg.HolidaysURL == "" {
		cfg.HolidaysURL = defaultHolidaysURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		countriesURL: cfg.CountriesURL,
		holidaysURL:  cfg.HolidaysURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// AvailableCountries returns the country codes the upstream supports.
func (c *Client) AvailableCountries(ctx context.Context) ([]string, error) {
	var countries []struct {
		CountryCode string `json:"countryCode"`
		Name        string `json:"name"`
	}
	if err := c.getJSON(ctx, c.countriesURL, &countries); err != nil {
		return nil, fmt.Errorf("fetch available countries: %w", err)
	}

	codes := make([]string, 0, len(countries))
	for _, country := range countries {
		codes = append(codes, country.CountryCode)
	}
	return codes, nil
}

// PublicHolidays returns the public holidays of one country for one year.
func (c *Client) PublicHolidays(ctx context.Context, year int, countryCode string) ([]domain.Holiday, error) {
	url := fmt.Sprintf("%s/%d/%s", c.holidaysURL, year, countryCode)

	var holidays []domain.Holiday
	if err := c.getJSON(ctx, url, &holidays); err != nil {
		return nil, fmt.Errorf("fetch holidays for %s/%d: %w", countryCode, year, err)
	}
	return holidays, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
