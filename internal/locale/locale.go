// Package locale holds the client's language state: Persian (RTL) or
// English (LTR). The preference persists alongside the tokens, and a
// change is delivered as one explicit event to a single registered
// listener instead of scattered writes to global state.
package locale

import (
	"context"
	"sync"

	"github.com/mohammadmehrani/CAD/internal/tokens"
)

// Locale is a supported UI language.
type Locale string

const (
	Persian Locale = "fa"
	English Locale = "en"
)

// Direction is the text direction of a locale.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// Direction returns the text direction for the locale.
func (l Locale) Direction() Direction {
	if l == Persian {
		return RTL
	}
	return LTR
}

func valid(l Locale) bool { return l == Persian || l == English }

// Manager owns the current locale. The backend's default is Persian.
type Manager struct {
	store tokens.Store

	mu       sync.RWMutex
	current  Locale
	listener func(Locale)
}

// NewManager returns a manager with the default locale. Call Load to pick
// up a persisted preference.
func NewManager(store tokens.Store) *Manager {
	return &Manager{store: store, current: Persian}
}

// Load reads the persisted preference, if any.
func (m *Manager) Load(ctx context.Context) error {
	v, err := m.store.Get(ctx, tokens.KeyPreferredLanguage)
	if err != nil {
		return err
	}
	if l := Locale(v); valid(l) {
		m.mu.Lock()
		m.current = l
		m.mu.Unlock()
	}
	return nil
}

// Current returns the active locale.
func (m *Manager) Current() Locale {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetListener registers the single listener notified on change. The
// renderer applies direction and label changes there.
func (m *Manager) SetListener(fn func(Locale)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = fn
}

// Set persists and activates l, notifying the listener when the value
// actually changed.
func (m *Manager) Set(ctx context.Context, l Locale) error {
	if !valid(l) {
		l = Persian
	}

	m.mu.Lock()
	if m.current == l {
		m.mu.Unlock()
		return nil
	}
	m.current = l
	listener := m.listener
	m.mu.Unlock()

	if err := m.store.Set(ctx, tokens.KeyPreferredLanguage, string(l)); err != nil {
		return err
	}
	if listener != nil {
		listener(l)
	}
	return nil
}

// Toggle switches between Persian and English.
func (m *Manager) Toggle(ctx context.Context) (Locale, error) {
	next := Persian
	if m.Current() == Persian {
		next = English
	}
	return next, m.Set(ctx, next)
}
