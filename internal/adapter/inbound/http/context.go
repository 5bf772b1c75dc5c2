package http

import (
	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

const identityKey = "identity"

// Identity describes the authenticated caller for the lifetime of a
// request.
type Identity struct {
	UserID types.ID
	Email  string
	Role   model.Role
	Token  string
}

// Actor converts the identity into the domain actor carried by
// commands and queries.
func (i Identity) Actor() model.Actor {
	return model.Actor{
		UserID: i.UserID,
		Role:   i.Role,
	}
}

// setIdentity stores the identity on the request context.
func setIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// identityFrom extracts the identity placed by the auth middleware.
func identityFrom(c *gin.Context) (Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}
