package catalog

import "context"

const getCategoriesQuery = `
  query GetCategories($pagination: PaginationInput, $search: String) {
    categories(pagination: $pagination, search: $search) {
      edges {
        node {
          id
          name
          description
          image
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

const createCategoryMutation = `
  mutation CreateCategory($input: CreateCategoryInput!) {
    createCategory(input: $input) {
      id
      name
      description
      image
      createdAt
      updatedAt
    }
  }
`

const updateCategoryMutation = `
  mutation UpdateCategory($id: Int!, $input: UpdateCategoryInput!) {
    updateCategory(id: $id, input: $input) {
      id
      name
      description
      image
      createdAt
      updatedAt
    }
  }
`

const deleteCategoryMutation = `
  mutation DeleteCategory($id: Int!) {
    deleteCategory(id: $id)
  }
`

type CategoryInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (s *Service) ListCategories(ctx context.Context, pagination *PaginationInput, search string) (Connection[Category], error) {
	var out struct {
		Categories Connection[Category] `json:"categories"`
	}
	vars := map[string]any{"search": search}
	if pagination != nil {
		vars["pagination"] = pagination
	}
	if err := s.gql.Do(ctx, getCategoriesQuery, vars, &out); err != nil {
		return Connection[Category]{}, err
	}
	return out.Categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	var out struct {
		CreateCategory Category `json:"createCategory"`
	}
	err := s.gql.Do(ctx, createCategoryMutation, map[string]any{"input": in}, &out)
	return out.CreateCategory, err
}

func (s *Service) UpdateCategory(ctx context.Context, id int, in CategoryInput) (Category, error) {
	var out struct {
		UpdateCategory Category `json:"updateCategory"`
	}
	err := s.gql.Do(ctx, updateCategoryMutation, map[string]any{"id": id, "input": in}, &out)
	return out.UpdateCategory, err
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.gql.Do(ctx, deleteCategoryMutation, map[string]any{"id": id}, nil)
}
