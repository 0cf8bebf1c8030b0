package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	rdb, err := NewRedisClient(context.Background(), mr.Addr(), "secret")
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	_, err = NewRedisClient(context.Background(), mr.Addr(), "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping "+mr.Addr())
}
