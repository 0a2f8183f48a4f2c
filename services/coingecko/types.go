package coingecko

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	coingeckoBaseAPI     = "https://api.coingecko.com"
	listHTTPTimeout      = 20 * time.Second
	priceHTTPTimeout     = 15 * time.Second
	coinListCacheKey     = "coinListCacheKey"
	vsCurrency           = "usd"
	defaultRatePerMinute = 30
)

var (
	ErrCoinNotFound      = errors.New("coin not found")
	ErrPriceNotAvailable = errors.New("price not available")
)

type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type PriceResponse map[string]map[string]*float64

type Service interface {
	Resolve(ctx context.Context, symbol string) (string, error)
	Price(ctx context.Context, coinID string) (float64, error)
}

type Impl struct {
	baseURL     string
	listClient  *http.Client
	priceClient *http.Client
	aliases     map[string]string
	cache       *cache.Cache
	limiter     *rate.Limiter
}
