package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apilooter/gateway/model"
)

func TestJokeCategoryTwoPart(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"category":"Programming","type":"twopart","setup":"Why do programmers prefer dark mode?","delivery":"Because light attracts bugs."}`))
	}))
	defer srv.Close()

	h := NewJokeCategory(srv.Client(), srv.URL+"/joke")
	result, err := h.Handle(context.Background(), model.Provider{}, map[string]string{"category": "Programming"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if gotPath != "/joke/Programming" {
		t.Errorf("request path = %q, want /joke/Programming", gotPath)
	}
	if result.Kind != model.KindJoke {
		t.Fatalf("Handle() kind = %q, want %q", result.Kind, model.KindJoke)
	}
	joke, ok := result.Data.(model.Joke)
	if !ok {
		t.Fatalf("Handle() data = %T, want model.Joke", result.Data)
	}
	if joke.Setup != "Why do programmers prefer dark mode?" || joke.Delivery != "Because light attracts bugs." {
		t.Errorf("Handle() joke = %+v", joke)
	}
	if joke.Category != "Programming" {
		t.Errorf("Handle() category = %q, want Programming", joke.Category)
	}
}

func TestJokeCategorySinglePart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"category":"Misc","type":"single","joke":"I would tell you a UDP joke, but you might not get it."}`))
	}))
	defer srv.Close()

	h := NewJokeCategory(srv.Client(), srv.URL+"/joke")
	result, err := h.Handle(context.Background(), model.Provider{}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	joke, ok := result.Data.(model.Joke)
	if !ok {
		t.Fatalf("Handle() data = %T, want model.Joke", result.Data)
	}
	if joke.Setup != "I would tell you a UDP joke, but you might not get it." {
		t.Errorf("Handle() setup = %q", joke.Setup)
	}
	if joke.Delivery != "" {
		t.Errorf("Handle() delivery = %q, want empty", joke.Delivery)
	}
}

func TestJokeCategoryDefaultsToAny(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"category":"Pun","type":"single","joke":"placeholder"}`))
	}))
	defer srv.Close()

	h := NewJokeCategory(srv.Client(), srv.URL+"/joke")
	if _, err := h.Handle(context.Background(), model.Provider{}, map[string]string{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if gotPath != "/joke/Any" {
		t.Errorf("request path = %q, want /joke/Any", gotPath)
	}
}

func TestJokeCategoryForwardsRemainingParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("blacklistFlags")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"category":"Any","type":"single","joke":"placeholder"}`))
	}))
	defer srv.Close()

	h := NewJokeCategory(srv.Client(), srv.URL+"/joke")
	params := map[string]string{"category": "Any", "blacklistFlags": "nsfw"}
	if _, err := h.Handle(context.Background(), model.Provider{}, params); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if gotQuery != "nsfw" {
		t.Errorf("query blacklistFlags = %q, want nsfw", gotQuery)
	}
}

func TestJokeCategoryMalformedBodyDegradesToText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("oops"))
	}))
	defer srv.Close()

	h := NewJokeCategory(srv.Client(), srv.URL+"/joke")
	result, err := h.Handle(context.Background(), model.Provider{}, nil)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Kind != model.KindText || result.Data != "oops" {
		t.Errorf("Handle() = %q %v", result.Kind, result.Data)
	}
}
