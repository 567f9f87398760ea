package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
)

func TestParityStatus(t *testing.T) {
	p := ParityStatus()
	assert.Equal(t, domain.UserStatusActive, p(domain.User{ID: 2}))
	assert.Equal(t, domain.UserStatusInactive, p(domain.User{ID: 3}))
}

func TestSourceStatus(t *testing.T) {
	p := SourceStatus()
	assert.Equal(t, domain.UserStatusActive, p(domain.User{Status: domain.UserStatusActive}))
	assert.Equal(t, domain.UserStatusInactive, p(domain.User{Status: "banned"}))
	assert.Equal(t, domain.UserStatusInactive, p(domain.User{}))
}

func TestRandomStatus_SeededIsDeterministic(t *testing.T) {
	a := RandomStatus(rand.New(rand.NewPCG(1, 2)))
	b := RandomStatus(rand.New(rand.NewPCG(1, 2)))

	seen := map[domain.UserStatus]bool{}
	for i := 0; i < 64; i++ {
		got := a(domain.User{ID: i})
		assert.Equal(t, got, b(domain.User{ID: i}))
		assert.True(t, got.Valid())
		seen[got] = true
	}
	assert.Len(t, seen, 2)
}

func TestNewStatusPolicy(t *testing.T) {
	for _, name := range []string{"", config.StatusPolicyRandom, config.StatusPolicyParity, config.StatusPolicySource} {
		p, err := NewStatusPolicy(name, nil)
		require.NoError(t, err, name)
		assert.True(t, p(domain.User{ID: 1}).Valid())
	}

	_, err := NewStatusPolicy("coin", nil)
	assert.Error(t, err)
}
