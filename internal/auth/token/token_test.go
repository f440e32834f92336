package token_test

import (
	"testing"
	"time"

	autherrors "go-payslip/internal/auth/errors"
	"go-payslip/internal/auth/token"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	now := time.Now()
	m := token.NewManagerWithClock("secret", 15*time.Minute, 0, func() time.Time { return now })

	access, err := m.Issue("user-1", token.KindAccess)
	assert.NoError(t, err)

	userID, err := m.Parse(access, token.KindAccess)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, token.DefaultRefreshTTL, m.RefreshTTL())
}

func TestManager_ParseRejects(t *testing.T) {
	now := time.Now()
	clock := now
	m := token.NewManagerWithClock("secret", time.Minute, time.Hour, func() time.Time { return clock })

	access, _ := m.Issue("user-1", token.KindAccess)
	refresh, _ := m.Issue("user-1", token.KindRefresh)

	t.Run("wrong kind", func(t *testing.T) {
		_, err := m.Parse(refresh, token.KindAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewManager("other", time.Minute, time.Hour)
		_, err := other.Parse(access, token.KindAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-jwt", token.KindAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		clock = now.Add(2 * time.Minute)
		defer func() { clock = now }()

		_, err := m.Parse(access, token.KindAccess)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})
}
