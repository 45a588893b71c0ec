package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevokeQueryOnlyTouchesRevokedFlag(t *testing.T) {
	svc := NewAuthService(testDB(), nil, nil, nil)

	q := svc.revokeQuery().Where("jti = ?", "abc").String()

	assert.Contains(t, q, "revoked = TRUE")
	assert.Contains(t, q, "jti = 'abc'")

	// Revocation must leave the rest of the session row untouched.
	for _, col := range []string{"user_id", "token_hash", "device_info", "created_at", "expires_at"} {
		assert.NotContains(t, q, col+" =", "revoke must not overwrite %s", col)
	}
}
