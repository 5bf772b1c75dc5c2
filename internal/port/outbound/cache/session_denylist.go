package cache

import (
	"context"
	"time"

	"github.com/0xsj/overwatch-pkg/types"
)

// SessionDenylist invalidates issued tokens before their natural
// expiration. Entries are keyed by user ID and live no longer than
// the token lifetime, after which expiry makes them redundant.
type SessionDenylist interface {
	// Revoke denylists all outstanding tokens for a user. TTL should
	// match the maximum remaining token lifetime.
	Revoke(ctx context.Context, userID types.ID, ttl time.Duration)

	// IsRevoked checks whether a user's tokens are denylisted.
	// Fails open: an unavailable cache reads as not revoked, so a
	// cache outage degrades revocation latency, not availability.
	IsRevoked(ctx context.Context, userID types.ID) bool

	// Clear removes a user's denylist entry. Called on successful
	// re-authentication so a fresh token is honored immediately.
	Clear(ctx context.Context, userID types.ID)
}
