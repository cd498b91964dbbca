package transport

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apilooter/gateway/internal/dispatch"
	"github.com/apilooter/gateway/model"
)

// maxInvokeBodyBytes caps the size of an invocation request body.
const maxInvokeBodyBytes = 64 << 10 // 64KB

// invokeRequest is the JSON body accepted by the invoke endpoint.
type invokeRequest struct {
	Params map[string]string `json:"params"`
}

// handleInvoke dispatches one provider invocation. Parameters arrive either
// as a JSON body or as form fields; both collapse to the same flat string
// map before dispatch.
func handleInvoke(engine *dispatch.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "providerId"))
		if err != nil {
			WriteError(w, model.NewBadRequestError("provider id must be an integer"))
			return
		}

		params, err := decodeParams(r)
		if err != nil {
			WriteError(w, model.NewBadRequestError("malformed request body"))
			return
		}

		result, err := engine.Dispatch(r.Context(), id, params)
		if err != nil {
			WriteError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, result)
	}
}

// decodeParams collapses the request body into a flat string map.
func decodeParams(r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxInvokeBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req invokeRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			return nil, err
		}
		if req.Params == nil {
			req.Params = map[string]string{}
		}
		return req.Params, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	params := make(map[string]string, len(r.PostForm))
	for k, values := range r.PostForm {
		if len(values) > 0 {
			params[k] = values[0]
		}
	}
	return params, nil
}
