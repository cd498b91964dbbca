package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apilooter/gateway/model"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 10 << 20 // 10MB

// upstreamResponse is the raw material a handler normalizes: status,
// content type, body, and the final URL after redirects.
type upstreamResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	FinalURL    string
}

// fetch issues the single outbound GET every handler performs: Accept
// application/json, params as query string. The catalog is the only source
// of endpoints; the domain policy has already been enforced by the dispatch
// engine before fetch runs.
func fetch(ctx context.Context, client *http.Client, endpoint string, params map[string]string) (*upstreamResponse, error) {
	reqURL := endpoint
	if len(params) > 0 {
		values := url.Values{}
		for k, v := range params {
			values.Set(k, v)
		}
		if strings.Contains(reqURL, "?") {
			reqURL += "&" + values.Encode()
		} else {
			reqURL += "?" + values.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("handler: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("handler: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("handler: read response: %w", err)
	}

	finalURL := reqURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &upstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		FinalURL:    finalURL,
	}, nil
}

// Generic handles any provider without a dedicated normalization: it
// inspects the response content type and maps the body onto the closest
// result kind.
type Generic struct {
	client *http.Client
}

// NewGeneric creates the generic handler.
func NewGeneric(client *http.Client) *Generic {
	return &Generic{client: client}
}

// Handle issues the GET and normalizes the response via Normalize.
func (h *Generic) Handle(ctx context.Context, provider model.Provider, params map[string]string) (model.Result, error) {
	resp, err := fetch(ctx, h.client, provider.Endpoint, params)
	if err != nil {
		return model.Result{}, err
	}
	return Normalize(resp), nil
}

// Normalize converts a raw upstream response into a result. JSON bodies
// become json results, except the one upstream convention where an object's
// "message" field carries an image URL. Image content types yield the
// response URL. Everything else, including unparseable JSON, degrades to
// plain text.
func Normalize(resp *upstreamResponse) model.Result {
	switch {
	case strings.Contains(resp.ContentType, "application/json"):
		var parsed any
		if err := json.Unmarshal(resp.Body, &parsed); err != nil {
			return model.TextResult(string(resp.Body))
		}
		if obj, ok := parsed.(map[string]any); ok {
			if msg, ok := obj["message"].(string); ok && strings.HasPrefix(msg, "http") {
				return model.ImageResult(msg)
			}
		}
		return model.JSONResult(parsed)
	case strings.Contains(resp.ContentType, "image"):
		return model.ImageResult(resp.FinalURL)
	default:
		return model.TextResult(string(resp.Body))
	}
}
