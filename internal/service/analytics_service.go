package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/events"
	"github.com/spec-kit/admin-dashboard/internal/selector"
	"github.com/spec-kit/admin-dashboard/internal/store"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// AnalyticsSource produces the dashboard aggregates.
type AnalyticsSource interface {
	Analytics(ctx context.Context) (domain.Analytics, error)
}

// MockAnalyticsSource serves the fixed chart data. It never fails.
type MockAnalyticsSource struct{}

// Analytics returns a fresh copy of the fixed datasets.
func (MockAnalyticsSource) Analytics(context.Context) (domain.Analytics, error) {
	return domain.Analytics{
		RegistrationTrend: []domain.PeriodCount{
			{Month: "Jan", Users: 120},
			{Month: "Feb", Users: 150},
			{Month: "Mar", Users: 200},
			{Month: "Apr", Users: 180},
			{Month: "May", Users: 220},
			{Month: "Jun", Users: 250},
		},
		UsersByRegion: []domain.RegionCount{
			{Region: "North", Count: 150},
			{Region: "South", Count: 120},
			{Region: "East", Count: 100},
			{Region: "West", Count: 180},
		},
		ActiveVsInactive: domain.ActivitySplit{Active: 350, Inactive: 200},
	}, nil
}

// DerivedAnalyticsSource keeps the trend and region data of Base but replaces
// the active/inactive split with the counts of the user slice. Until users
// have been fetched the Base split is kept.
type DerivedAnalyticsSource struct {
	Base  AnalyticsSource
	Store *store.Store
}

// Analytics implements AnalyticsSource.
func (d DerivedAnalyticsSource) Analytics(ctx context.Context) (domain.Analytics, error) {
	data, err := d.Base.Analytics(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	users := d.Store.Users()
	if users.Request.Status == domain.RequestIdle && len(users.Users) == 0 {
		return data, nil
	}
	data.ActiveVsInactive = selector.CountByStatus(users.Users)
	return data, nil
}

// AnalyticsService dispatches the analytics slice actions.
type AnalyticsService struct {
	store      *store.Store
	source     AnalyticsSource
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAnalyticsService builds the service.
func NewAnalyticsService(st *store.Store, source AnalyticsSource, dispatcher events.Dispatcher, logger *zap.Logger) *AnalyticsService {
	if source == nil {
		source = MockAnalyticsSource{}
	}
	if dispatcher == nil {
		dispatcher = events.NopDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{store: st, source: source, dispatcher: dispatcher, logger: logger}
}

// FetchAnalytics replaces the snapshot with the source's current data.
func (s *AnalyticsService) FetchAnalytics(ctx context.Context) (store.AnalyticsState, error) {
	var gen uint64
	s.store.UpdateAnalytics(func(st store.AnalyticsState) store.AnalyticsState {
		st, gen = st.BeginFetch()
		return st
	})

	data, err := s.source.Analytics(ctx)

	var applied bool
	state := s.store.UpdateAnalytics(func(st store.AnalyticsState) store.AnalyticsState {
		if err != nil {
			st, applied = st.RejectFetch(gen, store.MsgFetchAnalyticsFailed)
		} else {
			st, applied = st.FulfillFetch(gen, data)
		}
		return st
	})

	switch {
	case !applied:
		s.logger.Debug("discarding stale analytics response", zap.Uint64("generation", gen))
		publish(ctx, s.dispatcher, s.logger, events.New(events.EventStaleResponse, events.SliceAnalytics,
			state.Request.Status, events.StalePayload{Generation: gen, Latest: state.Generation}))
	case err != nil:
		s.logger.Warn("fetch analytics failed", zap.Error(err))
		publish(ctx, s.dispatcher, s.logger, events.New(events.EventAnalyticsFetchFailed, events.SliceAnalytics,
			domain.RequestRejected, events.FailurePayload{Message: store.MsgFetchAnalyticsFailed, Cause: err.Error()}))
	default:
		publish(ctx, s.dispatcher, s.logger, events.New(events.EventAnalyticsFetched, events.SliceAnalytics,
			domain.RequestFulfilled, nil))
	}

	if err != nil {
		return state, apperrors.NewUpstreamUnavailable(store.MsgFetchAnalyticsFailed, nil)
	}
	return state, nil
}

// EnsureAnalytics fetches once when the slice has never been requested.
func (s *AnalyticsService) EnsureAnalytics(ctx context.Context) (store.AnalyticsState, error) {
	state := s.store.Analytics()
	if state.Request.Status != domain.RequestIdle {
		return state, nil
	}
	return s.FetchAnalytics(ctx)
}

// Snapshot returns a copy of the analytics slice.
func (s *AnalyticsService) Snapshot() store.AnalyticsState {
	return s.store.Analytics()
}
