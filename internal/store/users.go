package store

import "github.com/spec-kit/admin-dashboard/internal/domain"

// Messages stored on the user slice when a request is rejected.
const (
	MsgFetchUsersFailed = "Failed to fetch users"
	MsgDeleteUserFailed = "Failed to delete user"
)

// UsersState is the user slice: the directory collection, its derived
// counters and the lifecycle of the fetch and delete requests.
//
// TotalUsers and ActiveUsers are always recomputed from Users.
type UsersState struct {
	Users         []domain.User       `json:"users"`
	Request       domain.RequestState `json:"request"`
	DeleteRequest domain.RequestState `json:"deleteRequest"`
	TotalUsers    int                 `json:"totalUsers"`
	ActiveUsers   int                 `json:"activeUsers"`
	DeletedUsers  int                 `json:"deletedUsers"`
	// Generation of the newest dispatched fetch.
	Generation uint64 `json:"-"`
}

// NewUsersState returns the idle, empty user slice.
func NewUsersState() UsersState {
	return UsersState{
		Users:         []domain.User{},
		Request:       domain.Idle(),
		DeleteRequest: domain.Idle(),
	}
}

// BeginFetch moves the slice to pending and returns the generation the
// response must present to be applied.
func (s UsersState) BeginFetch() (UsersState, uint64) {
	s.Generation++
	s.Request = s.Request.Begin()
	return s, s.Generation
}

// FulfillFetch replaces the collection with users. Responses from a stale
// generation are discarded and reported with applied=false.
func (s UsersState) FulfillFetch(gen uint64, users []domain.User) (UsersState, bool) {
	if gen != s.Generation {
		return s, false
	}
	s.Users = dedupe(users)
	s.Request = s.Request.Fulfill()
	return s.recount(), true
}

// RejectFetch records a failed fetch. The collection is left untouched.
func (s UsersState) RejectFetch(gen uint64, msg string) (UsersState, bool) {
	if gen != s.Generation {
		return s, false
	}
	s.Request = s.Request.Reject(msg, MsgFetchUsersFailed)
	return s, true
}

// BeginDelete marks a delete request as in flight.
func (s UsersState) BeginDelete() UsersState {
	s.DeleteRequest = s.DeleteRequest.Begin()
	return s
}

// FulfillDelete removes the record with id. An absent id leaves the
// collection and counters unchanged and reports removed=false.
func (s UsersState) FulfillDelete(id int) (UsersState, bool) {
	s.DeleteRequest = s.DeleteRequest.Fulfill()

	idx := -1
	for i, u := range s.Users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, false
	}

	remaining := make([]domain.User, 0, len(s.Users)-1)
	remaining = append(remaining, s.Users[:idx]...)
	remaining = append(remaining, s.Users[idx+1:]...)
	s.Users = remaining
	s.DeletedUsers++
	return s.recount(), true
}

// RejectDelete records a failed delete. The collection is left untouched.
func (s UsersState) RejectDelete(msg string) UsersState {
	s.DeleteRequest = s.DeleteRequest.Reject(msg, MsgDeleteUserFailed)
	return s
}

// Clone returns a copy that shares no memory with s.
func (s UsersState) Clone() UsersState {
	s.Users = append(make([]domain.User, 0, len(s.Users)), s.Users...)
	return s
}

func (s UsersState) recount() UsersState {
	s.TotalUsers = len(s.Users)
	s.ActiveUsers = 0
	for _, u := range s.Users {
		if u.Status == domain.UserStatusActive {
			s.ActiveUsers++
		}
	}
	return s
}

// dedupe copies users keeping the first record of every id.
func dedupe(users []domain.User) []domain.User {
	out := make([]domain.User, 0, len(users))
	seen := make(map[int]struct{}, len(users))
	for _, u := range users {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out
}
