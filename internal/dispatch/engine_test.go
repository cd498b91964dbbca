package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/apilooter/gateway/internal/catalog"
	"github.com/apilooter/gateway/internal/handler"
	"github.com/apilooter/gateway/internal/policy"
	"github.com/apilooter/gateway/model"
)

// stubHandler records its invocation and returns a canned outcome.
type stubHandler struct {
	invoked    bool
	gotParams  map[string]string
	result     model.Result
	err        error
	panicValue any
}

func (s *stubHandler) Handle(_ context.Context, _ model.Provider, params map[string]string) (model.Result, error) {
	s.invoked = true
	s.gotParams = params
	if s.panicValue != nil {
		panic(s.panicValue)
	}
	return s.result, s.err
}

// stubResolver resolves every provider to the same handler.
type stubResolver struct {
	h handler.Handler
}

func (s *stubResolver) Resolve(model.Provider) handler.Handler { return s.h }

func engineFixture(h handler.Handler, opts ...Option) *Engine {
	providers := []model.Provider{
		{
			ID:       1,
			Name:     "Cat Facts",
			Endpoint: "https://catfact.ninja/fact",
			Parameters: []model.ParameterSpec{
				{Name: "max_length", Label: "Maximum length", Type: model.ParamTypeText},
			},
		},
		{
			ID:       2,
			Name:     "Rogue",
			Endpoint: "https://rogue.example.net/api",
		},
	}
	reg := catalog.NewRegistry(providers)
	// The allow-list is derived from the first provider only, so the second
	// entry fails the policy re-check.
	domains := policy.NewDomain(providers[:1])
	return NewEngine(reg, &stubResolver{h: h}, domains, zap.NewNop(), opts...)
}

func TestDispatchSuccess(t *testing.T) {
	h := &stubHandler{result: model.TextResult("a fact")}
	e := engineFixture(h)

	result, err := e.Dispatch(context.Background(), 1, map[string]string{"max_length": "100"})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindText || result.Data != "a fact" {
		t.Errorf("Dispatch() = %q %v", result.Kind, result.Data)
	}
	if !h.invoked {
		t.Fatal("handler was not invoked")
	}
	if h.gotParams["max_length"] != "100" {
		t.Errorf("handler params = %v, want max_length=100", h.gotParams)
	}
}

func TestDispatchUnknownProvider(t *testing.T) {
	h := &stubHandler{}
	e := engineFixture(h)

	_, err := e.Dispatch(context.Background(), 99, nil)
	if err == nil {
		t.Fatal("Dispatch() error = nil, want not found")
	}
	var ee *model.ErrorEnvelope
	if !errors.As(err, &ee) || ee.Code != model.ErrNotFound {
		t.Errorf("Dispatch() error = %v, want %s envelope", err, model.ErrNotFound)
	}
	if h.invoked {
		t.Error("handler invoked for unknown provider")
	}
}

func TestDispatchDropsUndeclaredParams(t *testing.T) {
	h := &stubHandler{result: model.TextResult("ok")}
	e := engineFixture(h)

	form := map[string]string{
		"max_length": "50",
		"injected":   "value",
	}
	if _, err := e.Dispatch(context.Background(), 1, form); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if _, ok := h.gotParams["injected"]; ok {
		t.Errorf("undeclared parameter reached handler: %v", h.gotParams)
	}
	if h.gotParams["max_length"] != "50" {
		t.Errorf("declared parameter dropped: %v", h.gotParams)
	}
}

func TestDispatchRejectsOverlongParam(t *testing.T) {
	h := &stubHandler{result: model.TextResult("ok")}
	e := engineFixture(h, WithMaxParamLength(10))

	result, err := e.Dispatch(context.Background(), 1, map[string]string{
		"max_length": strings.Repeat("x", 11),
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindError {
		t.Fatalf("Dispatch() kind = %q, want %q", result.Kind, model.KindError)
	}
	if h.invoked {
		t.Error("handler invoked despite overlong parameter")
	}
}

func TestDispatchDefaultParamLengthCap(t *testing.T) {
	h := &stubHandler{result: model.TextResult("ok")}
	e := engineFixture(h)

	// Exactly at the cap is allowed.
	result, err := e.Dispatch(context.Background(), 1, map[string]string{
		"max_length": strings.Repeat("x", DefaultMaxParamLength),
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindText {
		t.Errorf("Dispatch() at cap kind = %q, want text", result.Kind)
	}

	// One past the cap is rejected.
	h.invoked = false
	result, err = e.Dispatch(context.Background(), 1, map[string]string{
		"max_length": strings.Repeat("x", DefaultMaxParamLength+1),
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindError || h.invoked {
		t.Errorf("Dispatch() past cap = %q, invoked = %v", result.Kind, h.invoked)
	}
}

func TestDispatchPolicyRecheck(t *testing.T) {
	h := &stubHandler{result: model.TextResult("ok")}
	e := engineFixture(h)

	result, err := e.Dispatch(context.Background(), 2, nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindError {
		t.Fatalf("Dispatch() kind = %q, want %q", result.Kind, model.KindError)
	}
	if result.Data != GenericErrorMessage {
		t.Errorf("Dispatch() data = %v, want generic message", result.Data)
	}
	if h.invoked {
		t.Error("handler invoked despite policy violation")
	}
}

func TestDispatchFlattensHandlerError(t *testing.T) {
	h := &stubHandler{err: errors.New("connection refused to internal-host:5432")}
	e := engineFixture(h)

	result, err := e.Dispatch(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindError || result.Data != GenericErrorMessage {
		t.Errorf("Dispatch() = %q %v, want generic error result", result.Kind, result.Data)
	}
}

func TestDispatchRecoversHandlerPanic(t *testing.T) {
	h := &stubHandler{panicValue: "boom"}
	e := engineFixture(h)

	result, err := e.Dispatch(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if result.Kind != model.KindError || result.Data != GenericErrorMessage {
		t.Errorf("Dispatch() = %q %v, want generic error result", result.Kind, result.Data)
	}
}
