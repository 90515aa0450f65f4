package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestGetOrLoadJSONLoadsOnce(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{1, "Books"}, {2, "Computers"}}, nil
	}

	got, err := GetOrLoadJSON(c, ctx, "departments:all", time.Minute, load)
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = GetOrLoadJSON(c, ctx, "departments:all", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, "Computers", got[1].Name)
	require.Equal(t, 1, calls)
	require.True(t, mr.Exists("departments:all"))

	require.NoError(t, c.Invalidate(ctx, "departments:all"))
	require.False(t, mr.Exists("departments:all"))

	_, err = GetOrLoadJSON(c, ctx, "departments:all", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestGetOrLoadPropagatesLoadError(t *testing.T) {
	c, mr := newTestCache(t)
	boom := errors.New("boom")

	_, err := GetOrLoadJSON(c, context.Background(), "k", time.Minute, func(context.Context) ([]item, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, mr.Exists("k"))
}

func TestGetOrLoadFallsBackWhenRedisDown(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	got, err := GetOrLoadJSON(c, context.Background(), "k", time.Minute, func(context.Context) (string, error) {
		return "direct", nil
	})
	require.NoError(t, err)
	require.Equal(t, "direct", got)
}
