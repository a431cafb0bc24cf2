package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadmehrani/CAD/internal/tokens"
)

func TestManager_DefaultIsPersian(t *testing.T) {
	t.Parallel()

	m := NewManager(tokens.NewMemoryStore())
	assert.Equal(t, Persian, m.Current())
	assert.Equal(t, RTL, m.Current().Direction())
}

func TestManager_LoadPersisted(t *testing.T) {
	t.Parallel()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), tokens.KeyPreferredLanguage, "en"))

	m := NewManager(store)
	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, English, m.Current())
}

func TestManager_LoadIgnoresGarbage(t *testing.T) {
	t.Parallel()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), tokens.KeyPreferredLanguage, "de"))

	m := NewManager(store)
	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, Persian, m.Current())
}

func TestManager_SetPersistsAndNotifiesOnce(t *testing.T) {
	t.Parallel()

	store := tokens.NewMemoryStore()
	m := NewManager(store)

	var notified []Locale
	m.SetListener(func(l Locale) { notified = append(notified, l) })

	require.NoError(t, m.Set(context.Background(), English))
	require.NoError(t, m.Set(context.Background(), English)) // no change, no event

	assert.Equal(t, []Locale{English}, notified)

	v, err := store.Get(context.Background(), tokens.KeyPreferredLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", v)
}

func TestManager_Toggle(t *testing.T) {
	t.Parallel()

	m := NewManager(tokens.NewMemoryStore())

	next, err := m.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, English, next)
	assert.Equal(t, LTR, next.Direction())

	next, err = m.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Persian, next)
}

func TestManager_Translations(t *testing.T) {
	t.Parallel()

	m := NewManager(tokens.NewMemoryStore())

	for _, key := range []string{MsgLoginRequired, MsgAdminOnly, MsgAlreadySignedIn, MsgPasswordMismatch} {
		require.NoError(t, m.Set(context.Background(), Persian))
		fa := m.T(key)
		require.NoError(t, m.Set(context.Background(), English))
		en := m.T(key)

		assert.NotEmpty(t, fa)
		assert.NotEmpty(t, en)
		assert.NotEqual(t, fa, en)
	}
}
