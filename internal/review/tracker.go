package review

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lexcard/lexcard-client/internal/quiz"
	"github.com/lexcard/lexcard-client/internal/storage"
)

// storageKey holds the reviewed set: a JSON array of question prompts
// the user has opened an explanation for. The set only ever grows.
const storageKey = "reviewedQuestions"

// Tracker remembers which questions have been reviewed, across
// sessions. Identity is the exact prompt text, not the question ID, so
// two questions sharing a prompt are conflated; that matches the
// shipped behavior and stays until the backend grows a per-user review
// record.
//
// Marking is a read-then-write of the whole set with no compare-and-
// swap, so two overlapping marks can lose one update. Known limitation
// at this scale.
type Tracker struct {
	store storage.KV
}

func NewTracker(store storage.KV) *Tracker {
	return &Tracker{store: store}
}

// Load returns the persisted reviewed set. A missing key, a storage
// error or malformed data all read as "nothing reviewed yet" — this
// must never take down the quiz screen.
func (t *Tracker) Load() []string {
	raw, ok, err := t.store.Get(storageKey)
	if err != nil {
		logrus.WithError(err).Warn("reading reviewed questions, treating as empty")
		return []string{}
	}
	if !ok {
		return []string{}
	}
	var prompts []string
	if err := json.Unmarshal([]byte(raw), &prompts); err != nil {
		logrus.WithError(err).Warn("reviewed questions corrupt, treating as empty")
		return []string{}
	}
	return prompts
}

// MarkReviewed adds prompt to the persisted set. Idempotent: marking
// the same prompt twice leaves a single entry.
func (t *Tracker) MarkReviewed(prompt string) error {
	if prompt == "" {
		return errors.New("empty question prompt")
	}
	prompts := t.Load()
	for _, p := range prompts {
		if p == prompt {
			return nil
		}
	}
	prompts = append(prompts, prompt)
	b, err := json.Marshal(prompts)
	if err != nil {
		return err
	}
	return t.store.Set(storageKey, string(b))
}

// Hydrate applies the persisted reviewed set to freshly fetched
// questions.
func (t *Tracker) Hydrate(questions []quiz.Question) []quiz.Question {
	return Apply(questions, t.Load())
}

// Apply returns a copy of questions with Reviewed set wherever the
// prompt is in the reviewed set. Pure.
func Apply(questions []quiz.Question, reviewed []string) []quiz.Question {
	set := make(map[string]struct{}, len(reviewed))
	for _, p := range reviewed {
		set[p] = struct{}{}
	}
	out := make([]quiz.Question, len(questions))
	for i, q := range questions {
		_, ok := set[q.Question]
		q.Reviewed = ok
		out[i] = q
	}
	return out
}

// Count formats the subcategory progress shown next to its name:
// "<reviewed>/<total>". An absent or empty list reads "0/0".
func Count(questions []quiz.Question) string {
	n := 0
	for _, q := range questions {
		if q.Reviewed {
			n++
		}
	}
	return fmt.Sprintf("%d/%d", n, len(questions))
}
