package service

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
)

// StatusPolicy assigns the activity status of a freshly fetched user.
type StatusPolicy func(domain.User) domain.UserStatus

// RandomStatus flips a coin per user. rng is injected so tests can seed it.
func RandomStatus(rng *rand.Rand) StatusPolicy {
	var mu sync.Mutex
	return func(domain.User) domain.UserStatus {
		mu.Lock()
		defer mu.Unlock()
		if rng.Float64() > 0.5 {
			return domain.UserStatusActive
		}
		return domain.UserStatusInactive
	}
}

// ParityStatus marks even ids active and odd ids inactive.
func ParityStatus() StatusPolicy {
	return func(u domain.User) domain.UserStatus {
		if u.ID%2 == 0 {
			return domain.UserStatusActive
		}
		return domain.UserStatusInactive
	}
}

// SourceStatus keeps the status delivered by the directory and falls back to
// inactive when it is missing or unknown.
func SourceStatus() StatusPolicy {
	return func(u domain.User) domain.UserStatus {
		if u.Status.Valid() {
			return u.Status
		}
		return domain.UserStatusInactive
	}
}

// NewStatusPolicy resolves a configured policy name.
func NewStatusPolicy(name string, rng *rand.Rand) (StatusPolicy, error) {
	switch name {
	case config.StatusPolicyRandom, "":
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		return RandomStatus(rng), nil
	case config.StatusPolicyParity:
		return ParityStatus(), nil
	case config.StatusPolicySource:
		return SourceStatus(), nil
	default:
		return nil, fmt.Errorf("unknown status policy %q", name)
	}
}
