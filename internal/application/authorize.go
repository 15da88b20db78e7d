package application

import (
	"github.com/blitzhq/taskboard/internal/domain/apperr"
	"github.com/blitzhq/taskboard/internal/domain/model"
)

// authorizeOwnerAction decides whether caller may act on a resource owned by
// ownerID: allowed iff the caller is the owner or holds the admin role.
func authorizeOwnerAction(ownerID string, caller model.Identity) *apperr.Error {
	if caller.UserID == ownerID || caller.IsAdmin() {
		return nil
	}
	return apperr.Unauthorized("unauthorized")
}
