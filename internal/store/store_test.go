package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

func TestStore_NewIsIdle(t *testing.T) {
	st := New()
	snap := st.Snapshot()
	assert.Equal(t, domain.RequestIdle, snap.Users.Request.Status)
	assert.Equal(t, domain.RequestIdle, snap.Auth.Request.Status)
	assert.Equal(t, domain.RequestIdle, snap.Analytics.Request.Status)
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	st := New()
	st.UpdateUsers(func(s UsersState) UsersState {
		s, gen := s.BeginFetch()
		s, _ = s.FulfillFetch(gen, sampleUsers())
		return s
	})

	snap := st.Snapshot()
	snap.Users.Users[0].Name = "mutated"
	assert.Equal(t, "Leanne Graham", st.Users().Users[0].Name)
}

func TestStore_SlicesAreIndependent(t *testing.T) {
	st := New()
	st.UpdateAuth(func(s AuthState) AuthState { return s.BeginLogin().RejectLogin("") })

	assert.Equal(t, domain.RequestRejected, st.Auth().Request.Status)
	assert.Equal(t, domain.RequestIdle, st.Users().Request.Status)
	assert.Equal(t, domain.RequestIdle, st.Analytics().Request.Status)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	st := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.UpdateUsers(func(s UsersState) UsersState {
				s, _ = s.BeginFetch()
				return s
			})
			_ = st.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), st.Users().Generation)
}
