package catalog

import (
	"context"
	"fmt"
)

const getSubcategoriesQuery = `
  query GetSubcategories($pagination: PaginationInput, $search: String) {
    subcategories(pagination: $pagination, search: $search) {
      edges {
        node {
          id
          name
          description
          categoryId
          createdAt
          updatedAt
          category {
            id
            name
            description
            image
          }
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

const createSubcategoryMutation = `
  mutation CreateSubcategory($input: CreateSubcategoryInput!) {
    createSubcategory(input: $input) {
      id
      name
      description
      categoryId
      createdAt
      updatedAt
    }
  }
`

const updateSubcategoryMutation = `
  mutation UpdateSubcategory($id: Int!, $input: UpdateSubcategoryInput!) {
    updateSubcategory(id: $id, input: $input) {
      id
      name
      description
      categoryId
      createdAt
      updatedAt
    }
  }
`

const deleteSubcategoryMutation = `
  mutation DeleteSubcategory($id: Int!) {
    deleteSubcategory(id: $id)
  }
`

type SubcategoryInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CategoryID  int    `json:"categoryId,omitempty"`
}

func (s *Service) ListSubcategories(ctx context.Context, pagination *PaginationInput, search string) (Connection[Subcategory], error) {
	var out struct {
		Subcategories Connection[Subcategory] `json:"subcategories"`
	}
	vars := map[string]any{"search": search}
	if pagination != nil {
		vars["pagination"] = pagination
	}
	if err := s.gql.Do(ctx, getSubcategoriesQuery, vars, &out); err != nil {
		return Connection[Subcategory]{}, err
	}
	return out.Subcategories, nil
}

func (s *Service) CreateSubcategory(ctx context.Context, in SubcategoryInput) (Subcategory, error) {
	var out struct {
		CreateSubcategory Subcategory `json:"createSubcategory"`
	}
	err := s.gql.Do(ctx, createSubcategoryMutation, map[string]any{"input": in}, &out)
	return out.CreateSubcategory, err
}

func (s *Service) UpdateSubcategory(ctx context.Context, id int, in SubcategoryInput) (Subcategory, error) {
	var out struct {
		UpdateSubcategory Subcategory `json:"updateSubcategory"`
	}
	err := s.gql.Do(ctx, updateSubcategoryMutation, map[string]any{"id": id, "input": in}, &out)
	return out.UpdateSubcategory, err
}

func (s *Service) DeleteSubcategory(ctx context.Context, id int) error {
	return s.gql.Do(ctx, deleteSubcategoryMutation, map[string]any{"id": id}, nil)
}

// SubcategoryDetail fetches the legacy detail record, child tests
// included. This is step one of the quiz aggregation flow.
func (s *Service) SubcategoryDetail(ctx context.Context, id int) (SubcategoryDetail, error) {
	var out SubcategoryDetail
	err := s.rest.get(ctx, fmt.Sprintf("/subcategories/%d", id), nil, &out)
	return out, err
}
