// Package handler implements per-provider response normalization: each
// handler performs the outbound call for one provider shape and converts the
// raw upstream response into a normalized result.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/apilooter/gateway/model"
)

// Handler performs the outbound call for a provider and normalizes its
// response. Implementations are total over response content: any parsing
// failure maps to a deterministic fallback result rather than an error. A
// non-nil error is reserved for transport-level failures (network, timeout)
// and is converted to the generic error result by the dispatch engine.
type Handler interface {
	Handle(ctx context.Context, provider model.Provider, params map[string]string) (model.Result, error)
}

// Key derives the registry binding key from a provider name: lowercase with
// spaces replaced by underscores.
func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Registry maps provider keys to dedicated handlers. The binding table is
// closed and explicit at build time; resolution never fails because the
// generic handler is the designed fallback for any provider without a
// dedicated binding.
type Registry struct {
	generic  Handler
	bindings map[string]Handler
}

// NewRegistry builds the registry with the default binding table over the
// given HTTP client.
func NewRegistry(client *http.Client) *Registry {
	generic := NewGeneric(client)
	return &Registry{
		generic: generic,
		bindings: map[string]Handler{
			"dog_ceo":     generic,
			"cat_facts":   NewFieldExtract(client, []string{"fact"}, "Failed to parse Cat Facts API response."),
			"jokeapi":     NewJokeCategory(client, DefaultJokeBaseURL),
			"dogapi":      NewFieldExtract(client, []string{"data", "0", "attributes", "body"}, "Failed to parse DogAPI response."),
			"advice_slip": NewFieldExtract(client, []string{"slip", "advice"}, "Failed to parse Advice Slip API response."),
			"dad_jokes":   NewFieldExtract(client, []string{"joke"}, "Failed to parse Dad Jokes API response."),
			"kanye_rest":  NewFieldExtract(client, []string{"quote"}, "Failed to parse Kanye Rest API response."),
		},
	}
}

// Resolve returns the handler for the given provider. Providers without the
// handler capability flag, and providers whose key has no binding, resolve
// to the generic handler.
func (r *Registry) Resolve(p model.Provider) Handler {
	if !p.HasHandler {
		return r.generic
	}
	if h, ok := r.bindings[Key(p.Name)]; ok {
		return h
	}
	return r.generic
}

// Generic returns the fallback handler.
func (r *Registry) Generic() Handler {
	return r.generic
}
