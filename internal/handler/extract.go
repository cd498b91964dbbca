package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/apilooter/gateway/model"
)

// FieldExtract handles the family of providers whose response is a known
// JSON shape with one interesting field: it issues a parameterless GET,
// plucks the field at a fixed path, and tags the value as text. Any missing
// field or parse failure yields the provider-specific fallback string, also
// tagged text, so failure stays local and predictable.
type FieldExtract struct {
	client   *http.Client
	path     []string
	fallback string
}

// NewFieldExtract creates an extraction handler for the given field path.
// Path segments index into objects by key and into arrays by decimal index.
func NewFieldExtract(client *http.Client, path []string, fallback string) *FieldExtract {
	return &FieldExtract{client: client, path: path, fallback: fallback}
}

// Handle issues the GET and extracts the configured field.
func (h *FieldExtract) Handle(ctx context.Context, provider model.Provider, params map[string]string) (model.Result, error) {
	resp, err := fetch(ctx, h.client, provider.Endpoint, nil)
	if err != nil {
		return model.Result{}, err
	}

	value, ok := extractString(resp.Body, h.path)
	if !ok {
		return model.TextResult(h.fallback), nil
	}
	return model.TextResult(value), nil
}

// extractString parses body as JSON and walks the path. Absence at any step
// returns false; it is a normal branch, never an error.
func extractString(body []byte, path []string) (string, bool) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return "", false
	}

	for _, segment := range path {
		switch node := value.(type) {
		case map[string]any:
			child, ok := node[segment]
			if !ok {
				return "", false
			}
			value = child
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return "", false
			}
			value = node[idx]
		default:
			return "", false
		}
	}

	s, ok := value.(string)
	return s, ok
}
