package weather

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	openWeatherBaseAPI = "https://api.openweathermap.org"
	clientHTTPTimeout  = 15 * time.Second
	metricUnits        = "metric"
)

var (
	ErrCityNotFound = errors.New("city not found")
	ErrBadResponse  = errors.New("weather provider returned an unexpected body")
)

type CurrentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
}

type Conditions struct {
	Description string
	Temperature float64
}

type Service interface {
	Current(ctx context.Context, city string) (*Conditions, error)
}

type Impl struct {
	baseURL string
	apiKey  string
	client  *http.Client
}
