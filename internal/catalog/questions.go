package catalog

import (
	"context"
	"fmt"
	"net/http"
)

// Question admin still rides the legacy REST endpoints; the GraphQL
// question schema exists server-side but the console was never moved
// over to it.

type QuestionInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Answers       []string `json:"answers"`
	Correct       int      `json:"correct"`
	Justification string   `json:"justification,omitempty"`
	Score         float64  `json:"score,omitempty"`
	TestID        int      `json:"testId"`
}

func (s *Service) ListQuestions(ctx context.Context, p ListParams) (Page[RawQuestion], error) {
	var out Page[RawQuestion]
	err := s.rest.get(ctx, "/questions", listQuery(p), &out)
	return out, err
}

func (s *Service) CreateQuestion(ctx context.Context, in QuestionInput) (RawQuestion, error) {
	var out RawQuestion
	err := s.rest.do(ctx, http.MethodPost, "/questions", nil, in, &out)
	return out, err
}

func (s *Service) UpdateQuestion(ctx context.Context, id int, in QuestionInput) (RawQuestion, error) {
	var out RawQuestion
	err := s.rest.do(ctx, http.MethodPut, fmt.Sprintf("/questions/%d", id), nil, in, &out)
	return out, err
}

func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	return s.rest.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil, nil, nil)
}
