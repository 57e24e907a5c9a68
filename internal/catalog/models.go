package catalog

import "encoding/json"

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type Subcategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  int       `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
}

type Test struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	SubcategoryID int          `json:"subcategoryId"`
	Subcategory   *Subcategory `json:"subcategory,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
	UpdatedAt     string       `json:"updatedAt,omitempty"`
}

// RawQuestion is a question as the backend serves it. Options and
// Answers are left undecoded because the backend is inconsistent: some
// records carry a JSON array, others a string containing serialized
// JSON. The quiz package resolves the shape once, right after fetch.
type RawQuestion struct {
	ID            int             `json:"id"`
	Question      string          `json:"question"`
	Options       json.RawMessage `json:"options,omitempty"`
	Answers       json.RawMessage `json:"answers,omitempty"`
	Correct       int             `json:"correct"`
	Justification string          `json:"justification,omitempty"`
	Type          string          `json:"type,omitempty"`
	Score         float64         `json:"score,omitempty"`
	TestID        int             `json:"testId,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

// SubcategoryDetail is the legacy REST detail record: the subcategory
// plus its parent category and child tests.
type SubcategoryDetail struct {
	Subcategory
	Tests []Test `json:"tests"`
}

// TestDetail is the legacy REST detail record for one test, questions
// included.
type TestDetail struct {
	Test
	Questions []RawQuestion `json:"questions"`
}

// Connection mirrors the backend's relay-style pagination.
type Connection[T any] struct {
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"pageInfo"`
	TotalCount int       `json:"totalCount"`
}

type Edge[T any] struct {
	Node T `json:"node"`
}

type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor,omitempty"`
	EndCursor       string `json:"endCursor,omitempty"`
}

func (c Connection[T]) Nodes() []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type PaginationInput struct {
	First  int    `json:"first,omitempty"`
	After  string `json:"after,omitempty"`
	Last   int    `json:"last,omitempty"`
	Before string `json:"before,omitempty"`
}

// Page is the envelope the legacy REST list endpoints return.
type Page[T any] struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
	Items        []T `json:"items"`
}
