package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

func New(apiKey string) *Impl {
	return NewWithBaseURL(openWeatherBaseAPI, apiKey)
}

func NewWithBaseURL(baseURL string, apiKey string) *Impl {
	return &Impl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: clientHTTPTimeout,
		},
	}
}

// Current fetches the current conditions for a free-text place name. Any
// non-200 answer is reported as ErrCityNotFound.
func (service *Impl) Current(ctx context.Context, city string) (*Conditions, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", service.apiKey)
	params.Set("units", metricUnits)
	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", service.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	resp, err := service.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrCityNotFound, resp.StatusCode)
	}

	var result CurrentResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Weather) == 0 {
		return nil, ErrBadResponse
	}

	return &Conditions{Description: result.Weather[0].Description, Temperature: result.Main.Temp}, nil
}
