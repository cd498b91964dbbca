package catalog

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/apilooter/gateway/model"
)

// snapshot is an immutable view of the catalog indexed for lookup.
type snapshot struct {
	ordered []model.Provider // sorted by name
	byID    map[int]model.Provider
	byName  map[string]model.Provider // keyed by lowercase name
}

// Registry is a read-optimized, thread-safe store of the provider catalog.
// It uses atomic pointer swap for lock-free concurrent reads; the catalog is
// built once at startup and never mutated by request traffic.
type Registry struct {
	snap atomic.Pointer[snapshot]
}

// NewRegistry creates a Registry from the given providers.
func NewRegistry(providers []model.Provider) *Registry {
	r := &Registry{}
	r.Replace(providers)
	return r
}

// Replace atomically swaps the registry contents with a new snapshot built
// from the given providers.
func (r *Registry) Replace(providers []model.Provider) {
	s := &snapshot{
		ordered: make([]model.Provider, len(providers)),
		byID:    make(map[int]model.Provider, len(providers)),
		byName:  make(map[string]model.Provider, len(providers)),
	}
	copy(s.ordered, providers)
	sort.Slice(s.ordered, func(i, j int) bool {
		return s.ordered[i].Name < s.ordered[j].Name
	})

	for _, p := range providers {
		s.byID[p.ID] = p
		s.byName[strings.ToLower(p.Name)] = p
	}

	r.snap.Store(s)
}

func (r *Registry) current() *snapshot {
	return r.snap.Load()
}

// All returns every provider, ordered by name.
func (r *Registry) All() []model.Provider {
	s := r.current()
	providers := make([]model.Provider, len(s.ordered))
	copy(providers, s.ordered)
	return providers
}

// ByID returns the provider with the given id.
func (r *Registry) ByID(id int) (model.Provider, bool) {
	p, ok := r.current().byID[id]
	return p, ok
}

// ByName returns the provider with the given name, matched case-insensitively.
func (r *Registry) ByName(name string) (model.Provider, bool) {
	p, ok := r.current().byName[strings.ToLower(name)]
	return p, ok
}

// Search returns providers whose name or description contains the query,
// case-insensitively, ordered by name.
func (r *Registry) Search(query string) []model.Provider {
	query = strings.ToLower(query)
	var matches []model.Provider
	for _, p := range r.current().ordered {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByCategory returns providers in the given category, ordered by name.
func (r *Registry) ByCategory(category string) []model.Provider {
	var matches []model.Provider
	for _, p := range r.current().ordered {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches
}

// Categories returns the sorted set of distinct categories in the catalog.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	for _, p := range r.current().ordered {
		if p.Category != "" {
			seen[p.Category] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// Len returns the number of providers in the catalog.
func (r *Registry) Len() int {
	return len(r.current().ordered)
}
