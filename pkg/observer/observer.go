package observer

import "time"

type EventType int

const (
	PremiumGrantedEvent EventType = 1
)

type Event struct {
	E         EventType
	UserID    int64
	Days      int
	ExpiresAt time.Time
}

func NewPremiumGrantedEvent(userID int64, days int, expiresAt time.Time) Event {
	return Event{E: PremiumGrantedEvent, UserID: userID, Days: days, ExpiresAt: expiresAt}
}

type Observer interface {
	OnNotify(Event)
}
