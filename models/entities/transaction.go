package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a payment event. Nothing creates one yet: payments are
// confirmed manually by an admin through /grant_premium.
type Transaction struct {
	ID         uint            `gorm:"primaryKey"`
	TelegramID int64           `gorm:"index"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,8)"`
	Currency   string
	Provider   string
	Payload    string
	Timestamp  time.Time `gorm:"not null; default:current_timestamp"`
}
