package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestState(t *testing.T) {
	r := Idle()
	assert.Equal(t, RequestIdle, r.Status)
	assert.False(t, r.Settled())

	r = r.Begin()
	assert.Equal(t, RequestPending, r.Status)
	assert.False(t, r.Settled())

	r = r.Reject("", "Failed to fetch users")
	assert.Equal(t, RequestRejected, r.Status)
	assert.Equal(t, "Failed to fetch users", r.Error)
	assert.True(t, r.Settled())

	r = r.Begin()
	assert.Empty(t, r.Error)

	r = r.Fulfill()
	assert.Equal(t, RequestFulfilled, r.Status)
	assert.True(t, r.Settled())
}

func TestUserStatusValid(t *testing.T) {
	assert.True(t, UserStatusActive.Valid())
	assert.True(t, UserStatusInactive.Valid())
	assert.False(t, UserStatus("").Valid())
	assert.False(t, UserStatus("banned").Valid())
}
