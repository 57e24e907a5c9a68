// internal/api/http/learn.go
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lexcard/lexcard-client/internal/catalog"
	"github.com/lexcard/lexcard-client/internal/quiz"
	"github.com/lexcard/lexcard-client/internal/review"
)

// openSubcategoryKey caches the prompts of the subcategory the session
// currently has open, so marking a question can refresh that
// subcategory's count without refetching.
const openSubcategoryKey = "openSubcategory"

type openSubcategory struct {
	ID      int      `json:"id"`
	Prompts []string `json:"prompts"`
}

func ListCategoriesHandler(cat *catalog.Service, assetBase string) http.HandlerFunc {
	type item struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Image       string `json:"image"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		first := 20
		if v, err := strconv.Atoi(r.URL.Query().Get("first")); err == nil && v > 0 {
			first = v
		}
		conn, err := cat.ListCategories(r.Context(), &catalog.PaginationInput{First: first}, r.URL.Query().Get("search"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		out := make([]item, 0, len(conn.Edges))
		for _, c := range conn.Nodes() {
			out = append(out, item{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
				Image:       quiz.ResolveImageURL(assetBase, c.Image),
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":      out,
			"totalCount": conn.TotalCount,
		})
	}
}

func ListSubcategoriesHandler(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := cat.ListSubcategories(r.Context(), &catalog.PaginationInput{First: 50}, r.URL.Query().Get("search"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":      conn.Nodes(),
			"totalCount": conn.TotalCount,
		})
	}
}

// OpenSubcategoryHandler is the quiz-browsing entry point: aggregate
// the subcategory's questions, apply the stored review status, and
// refresh this session's progress counts.
func OpenSubcategoryHandler(agg *quiz.Aggregator, tracker *review.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "subcategoryID"))
		if err != nil || id <= 0 {
			http.Error(w, "bad subcategory id", http.StatusBadRequest)
			return
		}
		questions, err := agg.FetchQuestions(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		questions = tracker.Hydrate(questions)
		counts := review.Count(questions)

		p := prefsFrom(r)
		review.NewProgress(p.Session).Set(id, counts)

		prompts := make([]string, 0, len(questions))
		for _, q := range questions {
			prompts = append(prompts, q.Question)
		}
		b, _ := json.Marshal(openSubcategory{ID: id, Prompts: prompts})
		_ = p.Session.Set(openSubcategoryKey, string(b))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"subcategoryId": id,
			"questions":     questions,
			"counts":        counts,
		})
	}
}

// MarkReviewedHandler records that the user opened a question's
// explanation, then refreshes the open subcategory's count.
func MarkReviewedHandler(tracker *review.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := tracker.MarkReviewed(req.Question); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p := prefsFrom(r)
		progress := review.NewProgress(p.Session)
		if raw, ok, _ := p.Session.Get(openSubcategoryKey); ok {
			var open openSubcategory
			if json.Unmarshal([]byte(raw), &open) == nil && open.ID > 0 {
				reviewed := map[string]struct{}{}
				for _, q := range tracker.Load() {
					reviewed[q] = struct{}{}
				}
				n := 0
				for _, prompt := range open.Prompts {
					if _, ok := reviewed[prompt]; ok {
						n++
					}
				}
				progress.Set(open.ID, strconv.Itoa(n)+"/"+strconv.Itoa(len(open.Prompts)))
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"counts": progress.All()})
	}
}

func ProgressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(review.NewProgress(prefsFrom(r).Session).All())
	}
}
