package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/apilooter/gateway/model"
)

// DefaultJokeBaseURL is the fixed base the joke-category handler appends the
// category path segment to.
const DefaultJokeBaseURL = "https://v2.jokeapi.dev/joke"

// defaultJokeCategory is used when the caller supplies no category.
const defaultJokeCategory = "Any"

// JokeCategory handles the joke provider: the category parameter selects a
// path segment rather than a query parameter, and the response is normalized
// into the two-part joke shape.
type JokeCategory struct {
	client  *http.Client
	baseURL string
}

// NewJokeCategory creates the joke handler against the given base URL.
func NewJokeCategory(client *http.Client, baseURL string) *JokeCategory {
	if baseURL == "" {
		baseURL = DefaultJokeBaseURL
	}
	return &JokeCategory{client: client, baseURL: baseURL}
}

// Handle removes the category key from params (defaulting to "Any"), builds
// the endpoint by appending it as a path segment, and forwards the remaining
// params as the query string.
func (h *JokeCategory) Handle(ctx context.Context, provider model.Provider, params map[string]string) (model.Result, error) {
	category := defaultJokeCategory
	remaining := make(map[string]string, len(params))
	for k, v := range params {
		if k == "category" {
			if v != "" {
				category = v
			}
			continue
		}
		remaining[k] = v
	}

	endpoint := h.baseURL + "/" + url.PathEscape(category)

	resp, err := fetch(ctx, h.client, endpoint, remaining)
	if err != nil {
		return model.Result{}, err
	}
	return normalizeJoke(resp), nil
}

// normalizeJoke extracts the joke shape from the response. Single-part
// responses carry the text in "joke" instead of "setup"/"delivery"; absence
// of either field is a normal branch, not a fault. Unparseable bodies
// degrade to plain text.
func normalizeJoke(resp *upstreamResponse) model.Result {
	var parsed map[string]any
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return model.TextResult(string(resp.Body))
	}

	joke := model.Joke{}
	joke.Category, _ = parsed["category"].(string)
	if setup, ok := parsed["setup"].(string); ok && setup != "" {
		joke.Setup = setup
	} else if single, ok := parsed["joke"].(string); ok {
		joke.Setup = single
	}
	joke.Delivery, _ = parsed["delivery"].(string)

	return model.JokeResult(joke)
}
