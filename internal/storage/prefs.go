package storage

import "encoding/json"

const (
	rememberMeKey = "rememberMe"

	// The UI theme survives a full clear, matching how logout keeps the
	// user's light/dark preference.
	themeModeKey = "themeMode"
)

// Prefs routes reads and writes between the durable store and a
// session-scoped store according to the remember-me preference. It is
// the explicit replacement for the original client's module-level
// remember-me flag: the preference itself lives in the durable store
// and is consulted on every write.
type Prefs struct {
	Durable KV
	Session KV
}

func (p Prefs) RememberMe() bool {
	raw, ok, err := p.Durable.Get(rememberMeKey)
	if err != nil || !ok {
		return false
	}
	var v bool
	if json.Unmarshal([]byte(raw), &v) != nil {
		return false
	}
	return v
}

func (p Prefs) SetRememberMe(v bool) error {
	b, _ := json.Marshal(v)
	return p.Durable.Set(rememberMeKey, string(b))
}

// SetItem writes to the store selected by remember-me and removes any
// stale copy from the other, so a key is only ever in one place.
func (p Prefs) SetItem(key, value string) error {
	if p.RememberMe() {
		_ = p.Session.Delete(key)
		return p.Durable.Set(key, value)
	}
	_ = p.Durable.Delete(key)
	return p.Session.Set(key, value)
}

// GetItem prefers the durable store, then falls back to the session.
func (p Prefs) GetItem(key string) (string, bool) {
	if v, ok, err := p.Durable.Get(key); err == nil && ok {
		return v, true
	}
	if v, ok, err := p.Session.Get(key); err == nil && ok {
		return v, true
	}
	return "", false
}

func (p Prefs) RemoveItem(key string) {
	_ = p.Durable.Delete(key)
	_ = p.Session.Delete(key)
}

// ClearAll wipes both stores but keeps the theme preference.
func (p Prefs) ClearAll() error {
	theme, hadTheme, _ := p.Durable.Get(themeModeKey)
	if err := p.Durable.Clear(); err != nil {
		return err
	}
	if err := p.Session.Clear(); err != nil {
		return err
	}
	if hadTheme {
		return p.Durable.Set(themeModeKey, theme)
	}
	return nil
}
