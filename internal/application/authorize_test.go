package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitzhq/taskboard/internal/domain/apperr"
	"github.com/blitzhq/taskboard/internal/domain/model"
)

func TestAuthorizeOwnerAction(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		caller  model.Identity
		allowed bool
	}{
		{
			name:    "owner allowed",
			ownerID: "u1",
			caller:  model.Identity{UserID: "u1", Email: "a@x.com", Role: model.RoleMember},
			allowed: true,
		},
		{
			name:    "admin allowed on someone else's resource",
			ownerID: "u1",
			caller:  model.Identity{UserID: "u9", Email: "admin@blitz.com", Role: model.RoleAdmin},
			allowed: true,
		},
		{
			name:    "non-owner member denied",
			ownerID: "u1",
			caller:  model.Identity{UserID: "u2", Email: "b@x.com", Role: model.RoleMember},
			allowed: false,
		},
		{
			name:    "empty caller denied",
			ownerID: "u1",
			caller:  model.Identity{},
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeOwnerAction(tt.ownerID, tt.caller)
			if tt.allowed {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, apperr.KindUnauthorized, err.Kind)
			assert.Equal(t, "unauthorized", err.Message)
		})
	}
}
