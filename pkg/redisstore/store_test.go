package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultPrefix(t *testing.T) {
	s := New(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "")
	t.Cleanup(func() { s.Close() })

	assert.Equal(t, "color-notes:limiter", s.key("limiter"))
}

func TestEmptyKeysAreNoop(t *testing.T) {
	s := New(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "test:")
	t.Cleanup(func() { s.Close() })

	val, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, val)

	assert.NoError(t, s.Set("", []byte("x"), time.Minute))
	assert.NoError(t, s.Set("k", nil, time.Minute))
	assert.NoError(t, s.Delete(""))
}

// Runs against a live server when REDIS_TEST_ADDR is set.
func TestStore_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	s, err := Connect(ctx, addr, "", 0, "color-notes-test:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Reset())

	val, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("a", []byte("1"), time.Minute))
	require.NoError(t, s.Set("b", []byte("2"), 0))

	val, err = s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	require.NoError(t, s.Delete("a"))
	val, err = s.Get("a")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Reset())
	val, err = s.Get("b")
	require.NoError(t, err)
	assert.Nil(t, val)
}
