package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apilooter/gateway/model"
)

func TestGenericHandleJSONObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fact":"cats sleep a lot","length":17}`))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	result, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindJSON {
		t.Fatalf("Handle() kind = %q, want %q", result.Kind, model.KindJSON)
	}
	obj, ok := result.Data.(map[string]any)
	if !ok || obj["fact"] != "cats sleep a lot" {
		t.Errorf("Handle() data = %v", result.Data)
	}
}

func TestGenericHandleMessageImageConvention(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"https://images.dog.ceo/breeds/hound/n123.jpg","status":"success"}`))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	result, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindImage {
		t.Fatalf("Handle() kind = %q, want %q", result.Kind, model.KindImage)
	}
	if result.Data != "https://images.dog.ceo/breeds/hound/n123.jpg" {
		t.Errorf("Handle() data = %v", result.Data)
	}
}

func TestGenericHandleNonURLMessageStaysJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"hello there"}`))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	result, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindJSON {
		t.Errorf("Handle() kind = %q, want %q", result.Kind, model.KindJSON)
	}
}

func TestGenericHandlePlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("42 is the answer"))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	result, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindText || result.Data != "42 is the answer" {
		t.Errorf("Handle() = %q %v", result.Kind, result.Data)
	}
}

func TestGenericHandleImageContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	result, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindImage {
		t.Fatalf("Handle() kind = %q, want %q", result.Kind, model.KindImage)
	}
	if result.Data != srv.URL {
		t.Errorf("Handle() data = %v, want final URL %s", result.Data, srv.URL)
	}
}

func TestGenericHandleMalformedJSONDegradesToText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	result, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindText || result.Data != "{not json" {
		t.Errorf("Handle() = %q %v", result.Kind, result.Data)
	}
}

func TestGenericHandleForwardsParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("max_length")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	_, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, map[string]string{"max_length": "100"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if gotQuery != "100" {
		t.Errorf("query max_length = %q, want 100", gotQuery)
	}
}

func TestGenericHandleAppendsToExistingQuery(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := NewGeneric(srv.Client())
	_, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL + "/?fixed=1"}, map[string]string{"extra": "2"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !strings.Contains(rawQuery, "fixed=1") || !strings.Contains(rawQuery, "extra=2") {
		t.Errorf("raw query = %q, want both fixed=1 and extra=2", rawQuery)
	}
}

func TestGenericHandleTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	h := NewGeneric(http.DefaultClient)
	if _, err := h.Handle(context.Background(), model.Provider{Endpoint: srv.URL}, nil); err == nil {
		t.Fatal("Handle() error = nil, want transport error")
	}
}
