package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/events"
	"github.com/spec-kit/admin-dashboard/internal/repository"
	"github.com/spec-kit/admin-dashboard/internal/selector"
	"github.com/spec-kit/admin-dashboard/internal/store"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// UserService dispatches the user slice actions.
type UserService struct {
	store      *store.Store
	directory  repository.UserDirectory
	policy     StatusPolicy
	dispatcher events.Dispatcher
	logger     *zap.Logger
	pageSize   int
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	Store        *store.Store
	Directory    repository.UserDirectory
	StatusPolicy StatusPolicy
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	PageSize     int
}

// NewUserService builds the service.
func NewUserService(deps UserDependencies) *UserService {
	svc := &UserService{
		store:      deps.Store,
		directory:  deps.Directory,
		policy:     deps.StatusPolicy,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		pageSize:   deps.PageSize,
	}
	if svc.policy == nil {
		svc.policy = SourceStatus()
	}
	if svc.dispatcher == nil {
		svc.dispatcher = events.NopDispatcher()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.pageSize <= 0 {
		svc.pageSize = selector.DefaultPageSize
	}
	return svc
}

// FetchUsers replaces the collection with the directory listing. On failure
// the slice is rejected, the previous collection survives and an
// UPSTREAM_UNAVAILABLE error is returned alongside the state.
func (s *UserService) FetchUsers(ctx context.Context) (store.UsersState, error) {
	var gen uint64
	s.store.UpdateUsers(func(st store.UsersState) store.UsersState {
		st, gen = st.BeginFetch()
		return st
	})

	users, err := s.directory.List(ctx)
	if err != nil {
		s.logger.Warn("fetch users failed", zap.Uint64("generation", gen), zap.Error(err))
		var applied bool
		state := s.store.UpdateUsers(func(st store.UsersState) store.UsersState {
			st, applied = st.RejectFetch(gen, store.MsgFetchUsersFailed)
			return st
		})
		if applied {
			s.publish(ctx, events.New(events.EventUsersFetchFailed, events.SliceUsers, domain.RequestRejected,
				events.FailurePayload{Message: store.MsgFetchUsersFailed, Cause: err.Error()}))
		} else {
			s.publishStale(ctx, gen, state)
		}
		return state, apperrors.NewUpstreamUnavailable(store.MsgFetchUsersFailed, nil)
	}

	for i := range users {
		users[i].Status = s.policy(users[i])
	}

	var applied bool
	state := s.store.UpdateUsers(func(st store.UsersState) store.UsersState {
		st, applied = st.FulfillFetch(gen, users)
		return st
	})
	if !applied {
		s.publishStale(ctx, gen, state)
		return state, nil
	}

	s.publish(ctx, events.New(events.EventUsersFetched, events.SliceUsers, domain.RequestFulfilled,
		events.UsersFetchedPayload{TotalUsers: state.TotalUsers, ActiveUsers: state.ActiveUsers}))
	return state, nil
}

// EnsureUsers fetches once when the slice has never been requested.
func (s *UserService) EnsureUsers(ctx context.Context) (store.UsersState, error) {
	state := s.store.Users()
	if state.Request.Status != domain.RequestIdle {
		return state, nil
	}
	return s.FetchUsers(ctx)
}

// DeleteUser removes id remotely and then from the collection. Deleting an
// id that is not held locally is a silent no-op for the collection.
func (s *UserService) DeleteUser(ctx context.Context, id int) (store.UsersState, error) {
	s.store.UpdateUsers(func(st store.UsersState) store.UsersState {
		return st.BeginDelete()
	})

	if err := s.directory.Delete(ctx, id); err != nil {
		s.logger.Warn("delete user failed", zap.Int("user_id", id), zap.Error(err))
		state := s.store.UpdateUsers(func(st store.UsersState) store.UsersState {
			return st.RejectDelete(store.MsgDeleteUserFailed)
		})
		s.publish(ctx, events.New(events.EventUserDeleteFailed, events.SliceUsers, domain.RequestRejected,
			events.FailurePayload{Message: store.MsgDeleteUserFailed, Cause: err.Error()}))
		return state, apperrors.NewUpstreamUnavailable(store.MsgDeleteUserFailed, map[string]any{"user_id": id})
	}

	var removed bool
	state := s.store.UpdateUsers(func(st store.UsersState) store.UsersState {
		st, removed = st.FulfillDelete(id)
		return st
	})
	s.publish(ctx, events.New(events.EventUserDeleted, events.SliceUsers, domain.RequestFulfilled,
		events.UserDeletedPayload{
			UserID:       id,
			Removed:      removed,
			TotalUsers:   state.TotalUsers,
			DeletedUsers: state.DeletedUsers,
		}))
	return state, nil
}

// Table builds the user management table view from the current slice.
func (s *UserService) Table(q selector.TableQuery) selector.UserTable {
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	return selector.BuildUserTable(s.store.Users(), q)
}

// Snapshot returns a copy of the user slice.
func (s *UserService) Snapshot() store.UsersState {
	return s.store.Users()
}

func (s *UserService) publishStale(ctx context.Context, gen uint64, state store.UsersState) {
	s.logger.Debug("discarding stale users response",
		zap.Uint64("generation", gen), zap.Uint64("latest", state.Generation))
	s.publish(ctx, events.New(events.EventStaleResponse, events.SliceUsers, state.Request.Status,
		events.StalePayload{Generation: gen, Latest: state.Generation}))
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	publish(ctx, s.dispatcher, s.logger, event)
}

func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
