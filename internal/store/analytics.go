package store

import "github.com/spec-kit/admin-dashboard/internal/domain"

// MsgFetchAnalyticsFailed is stored on the analytics slice after a failed fetch.
const MsgFetchAnalyticsFailed = "Failed to fetch analytics"

// AnalyticsState is the analytics slice.
type AnalyticsState struct {
	Data       domain.Analytics    `json:"data"`
	Request    domain.RequestState `json:"request"`
	Generation uint64              `json:"-"`
}

// NewAnalyticsState returns the idle slice with empty aggregates.
func NewAnalyticsState() AnalyticsState {
	return AnalyticsState{
		Data: domain.Analytics{
			RegistrationTrend: []domain.PeriodCount{},
			UsersByRegion:     []domain.RegionCount{},
		},
		Request: domain.Idle(),
	}
}

// BeginFetch moves the slice to pending and returns the fetch generation.
func (s AnalyticsState) BeginFetch() (AnalyticsState, uint64) {
	s.Generation++
	s.Request = s.Request.Begin()
	return s, s.Generation
}

// FulfillFetch replaces the snapshot wholesale unless gen is stale.
func (s AnalyticsState) FulfillFetch(gen uint64, data domain.Analytics) (AnalyticsState, bool) {
	if gen != s.Generation {
		return s, false
	}
	s.Data = data.Clone()
	s.Request = s.Request.Fulfill()
	return s, true
}

// RejectFetch records a failed fetch; the previous snapshot survives.
func (s AnalyticsState) RejectFetch(gen uint64, msg string) (AnalyticsState, bool) {
	if gen != s.Generation {
		return s, false
	}
	s.Request = s.Request.Reject(msg, MsgFetchAnalyticsFailed)
	return s, true
}

// Clone returns a copy that shares no memory with s.
func (s AnalyticsState) Clone() AnalyticsState {
	s.Data = s.Data.Clone()
	return s
}
