package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// restClient talks to the backend's legacy /api endpoints. Errors come
// back as a {"message": ...} envelope which we surface verbatim.
type restClient struct {
	base string
	http *http.Client
}

func newRESTClient(base string, timeout time.Duration) *restClient {
	h := &http.Client{}
	if timeout > 0 {
		h.Timeout = timeout
	}
	return &restClient{base: strings.TrimSuffix(base, "/"), http: h}
}

func (c *restClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		var e struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(res.Body).Decode(&e) == nil && e.Message != "" {
			return fmt.Errorf("%s", e.Message)
		}
		return fmt.Errorf("%s %s: %s", method, path, res.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *restClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// listQuery builds the shared pageNumber/pageSize/search/orderBy query
// the legacy list endpoints take.
func listQuery(p ListParams) url.Values {
	if p.PageNumber <= 0 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	return url.Values{
		"pageNumber":     {fmt.Sprint(p.PageNumber)},
		"pageSize":       {fmt.Sprint(p.PageSize)},
		"search":         {p.Search},
		"orderBy":        {p.OrderBy},
		"orderDirection": {p.OrderDirection},
	}
}

type ListParams struct {
	PageNumber     int
	PageSize       int
	Search         string
	OrderBy        string
	OrderDirection string
}
