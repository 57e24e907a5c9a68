// internal/api/http/admin.go
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lexcard/lexcard-client/internal/catalog"
)

// MountAdmin wires the console's catalog management under one router
// group. Everything here proxies to the backend; the gateway only
// shapes requests and relays errors.
func MountAdmin(r chi.Router, cat *catalog.Service) {
	r.Route("/categories", func(cr chi.Router) {
		cr.Get("/", listCategoriesAdmin(cat))
		cr.Post("/", createCategory(cat))
		cr.Put("/{id}", updateCategory(cat))
		cr.Delete("/{id}", deleteCategory(cat))
	})
	r.Route("/subcategories", func(sr chi.Router) {
		sr.Get("/", listSubcategories(cat))
		sr.Post("/", createSubcategory(cat))
		sr.Put("/{id}", updateSubcategory(cat))
		sr.Delete("/{id}", deleteSubcategory(cat))
	})
	r.Route("/tests", func(tr chi.Router) {
		tr.Get("/", listTests(cat))
		tr.Post("/", createTest(cat))
		tr.Put("/{id}", updateTest(cat))
		tr.Delete("/{id}", deleteTest(cat))
	})
	r.Route("/questions", func(qr chi.Router) {
		qr.Get("/", listQuestions(cat))
		qr.Post("/", createQuestion(cat))
		qr.Put("/{id}", updateQuestion(cat))
		qr.Delete("/{id}", deleteQuestion(cat))
	})
}

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

func paginationFrom(r *http.Request) *catalog.PaginationInput {
	first := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("first")); err == nil && v > 0 {
		first = v
	}
	return &catalog.PaginationInput{
		First: first,
		After: r.URL.Query().Get("after"),
	}
}

func relay(w http.ResponseWriter, out any, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if out == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

func decode(w http.ResponseWriter, r *http.Request, in any) bool {
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func listCategoriesAdmin(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := cat.ListCategories(r.Context(), paginationFrom(r), r.URL.Query().Get("search"))
		relay(w, out, err)
	}
}

func createCategory(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.CategoryInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.CreateCategory(r.Context(), in)
		relay(w, out, err)
	}
}

func updateCategory(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var in catalog.CategoryInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.UpdateCategory(r.Context(), id, in)
		relay(w, out, err)
	}
}

func deleteCategory(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		relay(w, nil, cat.DeleteCategory(r.Context(), id))
	}
}

func listSubcategories(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := cat.ListSubcategories(r.Context(), paginationFrom(r), r.URL.Query().Get("search"))
		relay(w, out, err)
	}
}

func createSubcategory(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.SubcategoryInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.CreateSubcategory(r.Context(), in)
		relay(w, out, err)
	}
}

func updateSubcategory(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var in catalog.SubcategoryInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.UpdateSubcategory(r.Context(), id, in)
		relay(w, out, err)
	}
}

func deleteSubcategory(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		relay(w, nil, cat.DeleteSubcategory(r.Context(), id))
	}
}

func listTests(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := cat.ListTests(r.Context(), paginationFrom(r), r.URL.Query().Get("search"))
		relay(w, out, err)
	}
}

func createTest(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.TestInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.CreateTest(r.Context(), in)
		relay(w, out, err)
	}
}

func updateTest(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var in catalog.TestInput
		if !decode(w, r, &in) {
			return
		}
		in.ID = id
		out, err := cat.UpdateTest(r.Context(), in)
		relay(w, out, err)
	}
}

func deleteTest(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		relay(w, nil, cat.DeleteTest(r.Context(), id))
	}
}

func listQuestions(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("pageNumber"))
		size, _ := strconv.Atoi(q.Get("pageSize"))
		out, err := cat.ListQuestions(r.Context(), catalog.ListParams{
			PageNumber:     page,
			PageSize:       size,
			Search:         q.Get("search"),
			OrderBy:        q.Get("orderBy"),
			OrderDirection: q.Get("orderDirection"),
		})
		relay(w, out, err)
	}
}

func createQuestion(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.QuestionInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.CreateQuestion(r.Context(), in)
		relay(w, out, err)
	}
}

func updateQuestion(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var in catalog.QuestionInput
		if !decode(w, r, &in) {
			return
		}
		out, err := cat.UpdateQuestion(r.Context(), id, in)
		relay(w, out, err)
	}
}

func deleteQuestion(cat *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		relay(w, nil, cat.DeleteQuestion(r.Context(), id))
	}
}
