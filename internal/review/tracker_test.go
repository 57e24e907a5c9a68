package review

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/lexcard/lexcard-client/internal/quiz"
)

type memKV struct {
	m       map[string]string
	failGet bool
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (s *memKV) Get(key string) (string, bool, error) {
	if s.failGet {
		return "", false, errors.New("storage broken")
	}
	v, ok := s.m[key]
	return v, ok, nil
}
func (s *memKV) Set(key, value string) error { s.m[key] = value; return nil }
func (s *memKV) Delete(key string) error     { delete(s.m, key); return nil }
func (s *memKV) Clear() error                { s.m = map[string]string{}; return nil }

func TestMarkReviewedIdempotent(t *testing.T) {
	kv := newMemKV()
	tr := NewTracker(kv)

	if err := tr.MarkReviewed("What is X?"); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	if err := tr.MarkReviewed("What is X?"); err != nil {
		t.Fatalf("MarkReviewed (second): %v", err)
	}

	var stored []string
	if err := json.Unmarshal([]byte(kv.m["reviewedQuestions"]), &stored); err != nil {
		t.Fatalf("persisted value not JSON: %v", err)
	}
	if !reflect.DeepEqual(stored, []string{"What is X?"}) {
		t.Fatalf("stored = %v", stored)
	}
}

func TestMarkReviewedRejectsEmptyPrompt(t *testing.T) {
	if err := NewTracker(newMemKV()).MarkReviewed(""); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestLoadToleratesMissingAndMalformed(t *testing.T) {
	kv := newMemKV()
	tr := NewTracker(kv)
	if got := tr.Load(); len(got) != 0 {
		t.Fatalf("missing key should read empty, got %v", got)
	}

	kv.m["reviewedQuestions"] = `{not json[`
	if got := tr.Load(); len(got) != 0 {
		t.Fatalf("malformed value should read empty, got %v", got)
	}

	kv.failGet = true
	if got := tr.Load(); got == nil || len(got) != 0 {
		t.Fatalf("storage error should read empty, got %#v", got)
	}
}

func TestApplyHydratesByPromptText(t *testing.T) {
	fresh := []quiz.Question{
		{Question: "What is X?"},
		{Question: "What is Y?"},
	}
	got := Apply(fresh, []string{"What is X?"})
	if !got[0].Reviewed || got[1].Reviewed {
		t.Fatalf("hydrated %+v", got)
	}
	// input untouched
	if fresh[0].Reviewed {
		t.Fatal("Apply mutated its input")
	}
}

func TestCountFormatting(t *testing.T) {
	qs := []quiz.Question{
		{Reviewed: true}, {Reviewed: false}, {Reviewed: true},
		{Reviewed: false}, {Reviewed: false},
	}
	if got := Count(qs); got != "2/5" {
		t.Fatalf("Count = %q", got)
	}
	if got := Count(nil); got != "0/0" {
		t.Fatalf("Count(nil) = %q", got)
	}
	if got := Count([]quiz.Question{}); got != "0/0" {
		t.Fatalf("Count(empty) = %q", got)
	}
}

func TestProgressMap(t *testing.T) {
	p := NewProgress(newMemKV())
	p.Set(5, "2/5")
	p.Set(9, "0/3")
	p.Set(5, "3/5")

	got := p.All()
	want := map[string]string{"5": "3/5", "9": "0/3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("All = %v", got)
	}
}
