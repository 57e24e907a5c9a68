package review

import (
	"encoding/json"
	"strconv"

	"github.com/lexcard/lexcard-client/internal/storage"
)

const progressKey = "reviewedCounts"

// Progress is the per-session map of subcategory ID to its "n/m"
// string. It lives in the session store only: counts are recomputed
// whenever a subcategory is opened, so persisting them would just
// serve stale numbers.
type Progress struct {
	store storage.KV
}

func NewProgress(session storage.KV) *Progress {
	return &Progress{store: session}
}

func (p *Progress) load() map[string]string {
	raw, ok, err := p.store.Get(progressKey)
	if err != nil || !ok {
		return map[string]string{}
	}
	m := map[string]string{}
	if json.Unmarshal([]byte(raw), &m) != nil {
		return map[string]string{}
	}
	return m
}

// Set records the "n/m" string for one subcategory.
func (p *Progress) Set(subcategoryID int, counts string) {
	m := p.load()
	m[strconv.Itoa(subcategoryID)] = counts
	b, _ := json.Marshal(m)
	_ = p.store.Set(progressKey, string(b))
}

// All returns the counts recorded so far this session.
func (p *Progress) All() map[string]string {
	return p.load()
}
