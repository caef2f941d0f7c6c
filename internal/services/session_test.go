package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/lockin90/lockin-backend/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestSessionLifecycle(t *testing.T) {
	mr := setupTestRedis(t)
	userID := uuid.NewString()

	t.Run("create and validate", func(t *testing.T) {
		token, err := CreateSession(userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		gotID, ok, err := ValidateSession(token)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)
	})

	t.Run("empty token is invalid", func(t *testing.T) {
		_, ok, err := ValidateSession("")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		_, ok, err := ValidateSession("not-a-real-token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("second login invalidates the first session", func(t *testing.T) {
		first, err := CreateSession(userID)
		require.NoError(t, err)
		second, err := CreateSession(userID)
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		_, ok, _ := ValidateSession(first)
		assert.False(t, ok)
		_, ok, _ = ValidateSession(second)
		assert.True(t, ok)
	})

	t.Run("invalidate removes both mappings", func(t *testing.T) {
		token, err := CreateSession(userID)
		require.NoError(t, err)

		require.NoError(t, InvalidateSession(token))

		_, ok, _ := ValidateSession(token)
		assert.False(t, ok)
		assert.False(t, mr.Exists(UserSessionKeyPrefix+userID))
	})

	t.Run("expired session is invalid", func(t *testing.T) {
		token, err := CreateSession(userID)
		require.NoError(t, err)

		mr.FastForward(SessionDuration + 1)

		_, ok, _ := ValidateSession(token)
		assert.False(t, ok)
	})

	t.Run("refresh extends the timer", func(t *testing.T) {
		token, err := CreateSession(userID)
		require.NoError(t, err)

		mr.FastForward(SessionDuration / 2)
		require.NoError(t, RefreshSession(token))
		mr.FastForward(SessionDuration / 2)

		// Would have expired without the refresh.
		_, ok, _ := ValidateSession(token)
		assert.True(t, ok)
	})

	t.Run("refresh of empty token errors", func(t *testing.T) {
		assert.Error(t, RefreshSession(""))
	})
}
