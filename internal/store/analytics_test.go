package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

func sampleAnalytics() domain.Analytics {
	return domain.Analytics{
		RegistrationTrend: []domain.PeriodCount{{Month: "Jan", Users: 120}},
		UsersByRegion:     []domain.RegionCount{{Region: "North", Count: 150}},
		ActiveVsInactive:  domain.ActivitySplit{Active: 350, Inactive: 200},
	}
}

func TestAnalyticsState_Lifecycle(t *testing.T) {
	s, gen := NewAnalyticsState().BeginFetch()
	assert.Equal(t, domain.RequestPending, s.Request.Status)

	s, applied := s.FulfillFetch(gen, sampleAnalytics())
	require.True(t, applied)
	assert.Equal(t, domain.RequestFulfilled, s.Request.Status)
	assert.Equal(t, 350, s.Data.ActiveVsInactive.Active)

	s, gen = s.BeginFetch()
	s, applied = s.RejectFetch(gen, "")
	require.True(t, applied)
	assert.Equal(t, domain.RequestRejected, s.Request.Status)
	assert.Equal(t, MsgFetchAnalyticsFailed, s.Request.Error)
	assert.Len(t, s.Data.RegistrationTrend, 1, "previous snapshot survives a rejection")
}

func TestAnalyticsState_StaleDiscarded(t *testing.T) {
	s, first := NewAnalyticsState().BeginFetch()
	s, _ = s.BeginFetch()

	s, applied := s.FulfillFetch(first, sampleAnalytics())
	assert.False(t, applied)
	assert.Equal(t, domain.RequestPending, s.Request.Status)
	assert.Empty(t, s.Data.RegistrationTrend)
}

func TestAnalyticsState_FulfillCopiesData(t *testing.T) {
	data := sampleAnalytics()
	s, gen := NewAnalyticsState().BeginFetch()
	s, _ = s.FulfillFetch(gen, data)
	data.RegistrationTrend[0].Users = 1
	assert.Equal(t, 120, s.Data.RegistrationTrend[0].Users)
}
