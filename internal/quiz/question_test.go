package quiz

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/lexcard/lexcard-client/internal/catalog"
)

func TestNormalizeDecodedList(t *testing.T) {
	q := Normalize(catalog.RawQuestion{
		ID:       1,
		Question: "Pick one",
		Options:  json.RawMessage(`["a","b","c"]`),
		Correct:  2,
	})
	if !reflect.DeepEqual(q.Answers, []string{"a", "b", "c"}) {
		t.Fatalf("Answers = %v", q.Answers)
	}
	if q.CorrectAnswer != "c" {
		t.Fatalf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestNormalizeSerializedList(t *testing.T) {
	q := Normalize(catalog.RawQuestion{
		ID:      2,
		Options: json.RawMessage(`"[\"x\",\"y\"]"`),
		Correct: 0,
	})
	if !reflect.DeepEqual(q.Answers, []string{"x", "y"}) || q.CorrectAnswer != "x" {
		t.Fatalf("normalized %+v", q)
	}
}

func TestNormalizeUnparsableOptions(t *testing.T) {
	q := Normalize(catalog.RawQuestion{
		ID:      3,
		Options: json.RawMessage(`"not valid json{"`),
		Correct: 2,
	})
	if !reflect.DeepEqual(q.Answers, []string{NoOptionsPlaceholder}) {
		t.Fatalf("Answers = %v", q.Answers)
	}
	if q.CorrectAnswer != "" {
		t.Fatalf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestNormalizeMissingOptions(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`[]`)} {
		q := Normalize(catalog.RawQuestion{ID: 4, Options: raw, Correct: 5})
		if !reflect.DeepEqual(q.Answers, []string{NoOptionsPlaceholder}) || q.CorrectAnswer != "" {
			t.Fatalf("options %s normalized to %+v", raw, q)
		}
	}
}

func TestNormalizeOutOfRangeCorrect(t *testing.T) {
	for _, correct := range []int{-1, 3, 99} {
		q := Normalize(catalog.RawQuestion{
			ID:      5,
			Options: json.RawMessage(`["a","b","c"]`),
			Correct: correct,
		})
		if q.CorrectAnswer != "" {
			t.Fatalf("correct=%d gave %q", correct, q.CorrectAnswer)
		}
	}
}

func TestResolveImageURL(t *testing.T) {
	cases := []struct {
		base, path, want string
	}{
		{"https://cdn.x", "", DefaultCategoryImage},
		{"https://cdn.x", "https://cdn.x/y.png", "https://cdn.x/y.png"},
		{"https://cdn.x", "http://other/y.png", "http://other/y.png"},
		{"https://cdn.x", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"https://cdn.x", "/img/a.png", "https://cdn.x/img/a.png"},
		{"https://cdn.x/", "/img/a.png", "https://cdn.x/img/a.png"},
		{"https://cdn.x/", "img/a.png", "https://cdn.x/img/a.png"},
	}
	for _, c := range cases {
		if got := ResolveImageURL(c.base, c.path); got != c.want {
			t.Errorf("ResolveImageURL(%q, %q) = %q, want %q", c.base, c.path, got, c.want)
		}
	}
}
