package quiz

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lexcard/lexcard-client/internal/catalog"
)

// CatalogSource is the slice of the catalog client the aggregator
// needs.
type CatalogSource interface {
	SubcategoryDetail(ctx context.Context, id int) (catalog.SubcategoryDetail, error)
	TestDetail(ctx context.Context, id int) (catalog.TestDetail, error)
}

// Aggregator reconstructs "all questions of a subcategory" from the
// legacy API, which only serves questions per test: subcategory detail
// first, then each child test in turn.
type Aggregator struct {
	src CatalogSource
}

func NewAggregator(src CatalogSource) *Aggregator {
	return &Aggregator{src: src}
}

// FetchRaw returns the subcategory's questions in raw form, ordered by
// test as the backend listed them, then by position within each test.
//
// Failure is deliberately asymmetric: a failed subcategory fetch fails
// the whole call, while a failed test fetch only drops that test's
// questions. One broken test must not blank the whole subcategory.
func (a *Aggregator) FetchRaw(ctx context.Context, subcategoryID int) ([]catalog.RawQuestion, error) {
	detail, err := a.src.SubcategoryDetail(ctx, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("subcategory %d: %w", subcategoryID, err)
	}
	if len(detail.Tests) == 0 {
		logrus.WithField("subcategory_id", subcategoryID).Debug("subcategory has no tests")
		return []catalog.RawQuestion{}, nil
	}

	all := []catalog.RawQuestion{}
	for _, t := range detail.Tests {
		td, err := a.src.TestDetail(ctx, t.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"subcategory_id": subcategoryID,
				"test_id":        t.ID,
			}).WithError(err).Warn("skipping test, detail fetch failed")
			continue
		}
		all = append(all, td.Questions...)
	}
	return all, nil
}

// FetchQuestions runs FetchRaw and normalizes the result for display.
func (a *Aggregator) FetchQuestions(ctx context.Context, subcategoryID int) ([]Question, error) {
	raw, err := a.FetchRaw(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out, nil
}
