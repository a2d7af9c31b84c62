package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/linque-cms/internal/models"
)

// AdminAuthState is the cached slice of an admin row that token checks need.
type AdminAuthState struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
}

const adminAuthStateTTL = 5 * time.Minute

func adminAuthStateKey(adminID uint) string {
	return fmt.Sprintf("auth:admin:%d", adminID)
}

// BuildAdminAuthState projects an admin row into its cached form.
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	return &AdminAuthState{AdminID: admin.ID, Username: admin.Username}
}

// GetAdminAuthState loads the cached state. The bool reports a hit.
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	state := &AdminAuthState{}
	hit, err := GetJSON(ctx, adminAuthStateKey(adminID), state)
	if err != nil || !hit {
		return nil, false, err
	}
	return state, true, nil
}

// SetAdminAuthState caches the state for a short window.
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, adminAuthStateKey(state.AdminID), state, adminAuthStateTTL)
}

// DelAdminAuthState drops the cached state, forcing the next token check to
// hit the store.
func DelAdminAuthState(ctx context.Context, adminID uint) error {
	return Del(ctx, adminAuthStateKey(adminID))
}
