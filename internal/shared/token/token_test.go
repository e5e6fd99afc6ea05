package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	raw, exp, err := m.Issue("user-1", "tenant-1", "owner")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "owner", claims.Role)
}

func TestManager_Parse(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		m := NewManager("secret", time.Minute)
		m.now = func() time.Time { return time.Now().Add(-time.Hour) }
		raw, _, err := m.Issue("user-1", "tenant-1", "owner")
		require.NoError(t, err)

		m.now = time.Now
		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw, _, err := NewManager("secret", time.Minute).Issue("user-1", "tenant-1", "owner")
		require.NoError(t, err)

		_, err = NewManager("other", time.Minute).Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "u", TenantID: "t"}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewManager("secret", time.Minute).Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing tenant", func(t *testing.T) {
		m := NewManager("secret", time.Minute)
		raw, _, err := m.Issue("user-1", "", "owner")
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewManager("secret", time.Minute).Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
