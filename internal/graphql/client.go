package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// TokenSource supplies the current access token, if any. The account
// layer plugs in its storage-backed token here so every call picks up
// a fresh login without rebuilding the client. The context carries the
// request's session, which is why it is threaded through.
type TokenSource func(ctx context.Context) (string, bool)

// Client speaks the backend's GraphQL wire format: one POST per
// operation with {query, variables}, bearer auth when logged in.
type Client struct {
	endpoint string
	http     *http.Client
	token    TokenSource
}

type Config struct {
	Endpoint string
	Token    TokenSource
	Timeout  time.Duration
}

func New(cfg Config) *Client {
	h := &http.Client{}
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}
	tok := cfg.Token
	if tok == nil {
		tok = func(context.Context) (string, bool) { return "", false }
	}
	return &Client{endpoint: cfg.Endpoint, http: h, token: tok}
}

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// Do runs one operation and unmarshals the response's data object into
// out. A transport failure, a non-2xx status, a GraphQL errors array,
// or an absent data object all surface as an error.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok, ok := c.token(ctx); ok && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return fmt.Errorf("graphql: %s", res.Status)
	}

	var gr gqlResponse
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		return err
	}
	if len(gr.Errors) > 0 {
		return errors.New(gr.Errors[0].Message)
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return errors.New("no data received from graphql server")
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(gr.Data, out)
}
