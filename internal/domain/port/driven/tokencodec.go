package driven

import "github.com/blitzhq/taskboard/internal/domain/model"

// TokenCodec defines the driven port for issuing and verifying the signed,
// time-limited bearer credentials that prove a caller's identity. Tokens are
// stateless; Verify relies on signature and expiry alone.
type TokenCodec interface {
	Issue(userID, email string, role model.Role) (string, error)
	Verify(token string) (*model.Identity, error)
}
