package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/lexcard/lexcard-client/internal/catalog"
)

type fakeCatalog struct {
	detail     map[int]catalog.SubcategoryDetail
	tests      map[int]catalog.TestDetail
	failDetail bool
	failTests  map[int]bool
	fetched    []int
}

func (f *fakeCatalog) SubcategoryDetail(_ context.Context, id int) (catalog.SubcategoryDetail, error) {
	if f.failDetail {
		return catalog.SubcategoryDetail{}, errors.New("backend down")
	}
	d, ok := f.detail[id]
	if !ok {
		return catalog.SubcategoryDetail{}, fmt.Errorf("subcategory %d not found", id)
	}
	return d, nil
}

func (f *fakeCatalog) TestDetail(_ context.Context, id int) (catalog.TestDetail, error) {
	f.fetched = append(f.fetched, id)
	if f.failTests[id] {
		return catalog.TestDetail{}, errors.New("test fetch failed")
	}
	return f.tests[id], nil
}

func rawQ(id int, text string) catalog.RawQuestion {
	return catalog.RawQuestion{
		ID:       id,
		Question: text,
		Options:  json.RawMessage(`["a","b","c"]`),
		Correct:  0,
	}
}

func subWithTests(testIDs ...int) catalog.SubcategoryDetail {
	d := catalog.SubcategoryDetail{}
	d.ID = 1
	for _, id := range testIDs {
		d.Tests = append(d.Tests, catalog.Test{ID: id})
	}
	return d
}

func TestFetchRawPreservesOrder(t *testing.T) {
	f := &fakeCatalog{
		detail: map[int]catalog.SubcategoryDetail{1: subWithTests(10, 11)},
		tests: map[int]catalog.TestDetail{
			10: {Questions: []catalog.RawQuestion{rawQ(1, "q1"), rawQ(2, "q2")}},
			11: {Questions: []catalog.RawQuestion{rawQ(3, "q3")}},
		},
	}
	got, err := NewAggregator(f).FetchRaw(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchRaw: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d questions", len(got))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if got[i].Question != want {
			t.Fatalf("question %d = %q, want %q", i, got[i].Question, want)
		}
	}
}

func TestFetchRawSkipsFailedTest(t *testing.T) {
	f := &fakeCatalog{
		detail: map[int]catalog.SubcategoryDetail{1: subWithTests(10, 11)},
		tests: map[int]catalog.TestDetail{
			10: {Questions: []catalog.RawQuestion{rawQ(1, "q1"), rawQ(2, "q2")}},
		},
		failTests: map[int]bool{11: true},
	}
	got, err := NewAggregator(f).FetchRaw(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchRaw should tolerate a failed test: %v", err)
	}
	if len(got) != 2 || got[0].Question != "q1" || got[1].Question != "q2" {
		t.Fatalf("got %+v", got)
	}
}

func TestFetchRawPropagatesSubcategoryFailure(t *testing.T) {
	f := &fakeCatalog{failDetail: true}
	got, err := NewAggregator(f).FetchRaw(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error when subcategory fetch fails")
	}
	if got != nil {
		t.Fatalf("no partial result expected, got %+v", got)
	}
}

func TestFetchRawEmptyTestsShortCircuits(t *testing.T) {
	f := &fakeCatalog{
		detail: map[int]catalog.SubcategoryDetail{1: subWithTests()},
	}
	got, err := NewAggregator(f).FetchRaw(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchRaw: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
	if len(f.fetched) != 0 {
		t.Fatalf("no test detail fetch expected, got %v", f.fetched)
	}
}

func TestFetchQuestionsNormalizes(t *testing.T) {
	f := &fakeCatalog{
		detail: map[int]catalog.SubcategoryDetail{1: subWithTests(10)},
		tests: map[int]catalog.TestDetail{
			10: {Questions: []catalog.RawQuestion{{
				ID:            7,
				Question:      "What is X?",
				Options:       json.RawMessage(`"[\"yes\",\"no\"]"`),
				Correct:       1,
				Justification: "because",
			}}},
		},
	}
	got, err := NewAggregator(f).FetchQuestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions", len(got))
	}
	q := got[0]
	if q.CorrectAnswer != "no" || q.Explanation != "because" || q.Reviewed {
		t.Fatalf("normalized %+v", q)
	}
}
