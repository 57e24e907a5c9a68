package catalog

import (
	"time"

	"github.com/lexcard/lexcard-client/internal/graphql"
)

// Service is the backend-facing catalog client: categories,
// subcategories, tests and questions. Newer entities are managed over
// GraphQL; the subcategory/test detail records the quiz flow needs are
// still only served by the legacy REST endpoints.
type Service struct {
	gql  *graphql.Client
	rest *restClient
}

func NewService(gql *graphql.Client, backendURL string) *Service {
	return &Service{
		gql:  gql,
		rest: newRESTClient(backendURL+"/api", 15*time.Second),
	}
}
