package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUsersFetched         EventType = "users_fetched"
	EventUsersFetchFailed     EventType = "users_fetch_failed"
	EventUserDeleted          EventType = "user_deleted"
	EventUserDeleteFailed     EventType = "user_delete_failed"
	EventAnalyticsFetched     EventType = "analytics_fetched"
	EventAnalyticsFetchFailed EventType = "analytics_fetch_failed"
	EventLoginSucceeded       EventType = "login_succeeded"
	EventLoginFailed          EventType = "login_failed"
	EventLoggedOut            EventType = "logged_out"
	EventStaleResponse        EventType = "stale_response_discarded"
)

// AllEventTypes lists every type a subscriber may register for.
var AllEventTypes = []EventType{
	EventUsersFetched,
	EventUsersFetchFailed,
	EventUserDeleted,
	EventUserDeleteFailed,
	EventAnalyticsFetched,
	EventAnalyticsFetchFailed,
	EventLoginSucceeded,
	EventLoginFailed,
	EventLoggedOut,
	EventStaleResponse,
}

// Slice names used in events and metrics.
const (
	SliceUsers     = "users"
	SliceAuth      = "auth"
	SliceAnalytics = "analytics"
)

// Event describes a settled slice transition.
type Event struct {
	ID        string               `json:"id"`
	Type      EventType            `json:"type"`
	Slice     string               `json:"slice"`
	Status    domain.RequestStatus `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   interface{}          `json:"payload,omitempty"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, slice string, status domain.RequestStatus, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Slice:     slice,
		Status:    status,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UsersFetchedPayload payload.
type UsersFetchedPayload struct {
	TotalUsers  int `json:"total_users"`
	ActiveUsers int `json:"active_users"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	UserID       int  `json:"user_id"`
	Removed      bool `json:"removed"`
	TotalUsers   int  `json:"total_users"`
	DeletedUsers int  `json:"deleted_users"`
}

// FailurePayload payload for rejected transitions.
type FailurePayload struct {
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// SessionPayload payload for auth transitions.
type SessionPayload struct {
	Email string `json:"email"`
}

// StalePayload payload for discarded responses.
type StalePayload struct {
	Generation uint64 `json:"generation"`
	Latest     uint64 `json:"latest"`
}
