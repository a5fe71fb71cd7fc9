package ws

import (
	"time"

	"expansion/internal/domain"
)

const TypeStatusChanged = "city_status_changed"

// StatusEvent is pushed to every connected client when a city changes status.
type StatusEvent struct {
	Type       string        `json:"type_message"`
	CityID     int64         `json:"city_id"`
	From       domain.Status `json:"from"`
	To         domain.Status `json:"to"`
	OccurredAt time.Time     `json:"occurred_at"`
}
