package catalog

import (
	"context"
	"fmt"
)

const getTestsQuery = `
  query GetAllTests($pagination: PaginationInput, $search: String) {
    tests(pagination: $pagination, search: $search) {
      edges {
        node {
          id
          name
          description
          subcategoryId
          subcategory {
            id
            name
            description
          }
          createdAt
          updatedAt
        }
      }
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
      totalCount
    }
  }
`

const createTestMutation = `
  mutation CreateTest($input: CreateTestInput!) {
    createTest(input: $input) {
      id
      name
      description
      subcategoryId
      createdAt
      updatedAt
    }
  }
`

const updateTestMutation = `
  mutation UpdateTest($input: UpdateTestInput!) {
    updateTest(input: $input) {
      id
      name
      description
      subcategoryId
      createdAt
      updatedAt
    }
  }
`

const deleteTestMutation = `
  mutation DeleteTest($id: Int!) {
    deleteTest(id: $id)
  }
`

type TestInput struct {
	ID            int    `json:"id,omitempty"` // required for update
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	SubcategoryID int    `json:"subcategoryId,omitempty"`
}

func (s *Service) ListTests(ctx context.Context, pagination *PaginationInput, search string) (Connection[Test], error) {
	var out struct {
		Tests Connection[Test] `json:"tests"`
	}
	vars := map[string]any{"search": search}
	if pagination != nil {
		vars["pagination"] = pagination
	}
	if err := s.gql.Do(ctx, getTestsQuery, vars, &out); err != nil {
		return Connection[Test]{}, err
	}
	return out.Tests, nil
}

func (s *Service) CreateTest(ctx context.Context, in TestInput) (Test, error) {
	var out struct {
		CreateTest Test `json:"createTest"`
	}
	err := s.gql.Do(ctx, createTestMutation, map[string]any{"input": in}, &out)
	return out.CreateTest, err
}

func (s *Service) UpdateTest(ctx context.Context, in TestInput) (Test, error) {
	var out struct {
		UpdateTest Test `json:"updateTest"`
	}
	err := s.gql.Do(ctx, updateTestMutation, map[string]any{"input": in}, &out)
	return out.UpdateTest, err
}

func (s *Service) DeleteTest(ctx context.Context, id int) error {
	return s.gql.Do(ctx, deleteTestMutation, map[string]any{"id": id}, nil)
}

// TestDetail fetches the legacy detail record with its questions.
// This is step two of the quiz aggregation flow.
func (s *Service) TestDetail(ctx context.Context, id int) (TestDetail, error) {
	var out TestDetail
	err := s.rest.get(ctx, fmt.Sprintf("/tests/%d", id), nil, &out)
	return out, err
}
