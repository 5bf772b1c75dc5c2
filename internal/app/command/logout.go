package command

import (
	"context"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
)

// logoutHandler implements command.LogoutHandler.
type logoutHandler struct {
	denylist    cache.SessionDenylist
	denylistTTL time.Duration
	publisher   messaging.EventPublisher
}

// NewLogoutHandler creates a new LogoutHandler. denylistTTL should
// match the access token lifetime so entries outlive every token
// issued before the logout.
func NewLogoutHandler(
	denylist cache.SessionDenylist,
	denylistTTL time.Duration,
	publisher messaging.EventPublisher,
) command.LogoutHandler {
	return &logoutHandler{
		denylist:    denylist,
		denylistTTL: denylistTTL,
		publisher:   publisher,
	}
}

func (h *logoutHandler) Handle(ctx context.Context, cmd command.Logout) (command.LogoutResult, error) {
	h.denylist.Revoke(ctx, cmd.Actor.UserID, h.denylistTTL)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewSessionRevoked(cmd.Actor.UserID, "logout"))

	return command.LogoutResult{RevokedAt: types.Now()}, nil
}
