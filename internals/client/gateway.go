// file: internals/client/gateway.go

// Package client is the Go client for the medlearn backend. It mirrors the
// dashboard's state model: a tree store for the content hierarchy, form
// controllers for entity CRUD, and an audio controller plus a pure playback
// player for the explanation TTS assets.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// NetworkError wraps transport failures (connection refused, DNS, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// GatewayError is a response the server produced deliberately: either an
// error HTTP status or a {success:false} envelope. The message is surfaced
// to the user verbatim.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ValidationError is raised client-side before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Tree    json.RawMessage `json:"tree"`
}

// Gateway issues authenticated JSON requests and unwraps the response
// envelope. A nil HTTP client falls back to http.DefaultClient.
type Gateway struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewGateway(baseURL, token string) *Gateway {
	return &Gateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

func (g *Gateway) httpClient() *http.Client {
	if g.HTTP != nil {
		return g.HTTP
	}
	return http.DefaultClient
}

// Do sends a request and decodes the envelope's data field into out when out
// is non-nil. Body may be nil for GET/DELETE.
func (g *Gateway) Do(ctx context.Context, method, path string, body any, out any) error {
	env, err := g.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &GatewayError{Message: "malformed response payload"}
		}
	}
	return nil
}

// FetchTree is the one endpoint whose payload sits beside the envelope
// instead of inside data.
func (g *Gateway) FetchTree(ctx context.Context, out any) error {
	env, err := g.roundTrip(ctx, http.MethodGet, "/api/admin/subjects/tree", nil)
	if err != nil {
		return err
	}
	if len(env.Tree) == 0 {
		return &GatewayError{Message: "missing tree payload"}
	}
	if err := json.Unmarshal(env.Tree, out); err != nil {
		return &GatewayError{Message: "malformed tree payload"}
	}
	return nil
}

func (g *Gateway) roundTrip(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, &ValidationError{Message: "unencodable request body"}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, reader)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.httpClient().Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	// an undecodable body means the response never came from this API
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("non-JSON response (status %d): %w", resp.StatusCode, err)}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return nil, &GatewayError{Status: resp.StatusCode, Message: msg}
	}
	return &env, nil
}
