package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrough_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := Through(context.Background(), c, "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}
	assert.Equal(t, 1, calls)
}

func TestThrough_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := Through(context.Background(), c, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	now = now.Add(2 * time.Minute)

	v, err = Through(context.Background(), c, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestThrough_NeverCachesErrors(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	boom := errors.New("boom")

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	}

	_, err := Through(context.Background(), c, "k", fetch)
	require.ErrorIs(t, err, boom)

	v, err := Through(context.Background(), c, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := Through(context.Background(), c, "k", fetch)
	require.NoError(t, err)

	c.Invalidate("k")

	_, err = Through(context.Background(), c, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestThrough_NilCachePassesThrough(t *testing.T) {
	t.Parallel()

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	for i := 0; i < 2; i++ {
		v, err := Through[string](context.Background(), nil, "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	}
	assert.Equal(t, 2, calls)
}

func TestNew_ZeroTTLUsesDefault(t *testing.T) {
	t.Parallel()

	c := New(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
