package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apilooter/gateway/internal/catalog"
	"github.com/apilooter/gateway/model"
)

// providerListResponse is the body for the provider listing endpoint.
type providerListResponse struct {
	Providers []model.Provider `json:"providers"`
	Count     int              `json:"count"`
}

// categoriesResponse is the body for the category listing endpoint.
type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// handleListProviders serves the full catalog, optionally narrowed by a
// search query (?q) or a category filter (?category).
func handleListProviders(reg *catalog.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")

		var providers []model.Provider
		switch {
		case query != "":
			providers = reg.Search(query)
		case category != "":
			providers = reg.ByCategory(category)
		default:
			providers = reg.All()
		}

		WriteJSON(w, http.StatusOK, providerListResponse{
			Providers: providers,
			Count:     len(providers),
		})
	}
}

// handleGetProvider serves a single catalog entry by numeric id.
func handleGetProvider(reg *catalog.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "providerId"))
		if err != nil {
			WriteError(w, model.NewBadRequestError("provider id must be an integer"))
			return
		}

		p, ok := reg.ByID(id)
		if !ok {
			WriteNotFound(w, "provider not found")
			return
		}
		WriteJSON(w, http.StatusOK, p)
	}
}

// handleListCategories serves the distinct categories present in the catalog.
func handleListCategories(reg *catalog.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, categoriesResponse{
			Categories: reg.Categories(),
		})
	}
}
