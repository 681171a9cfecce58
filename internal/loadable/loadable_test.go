package loadable

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestZeroValueIsLoading(t *testing.T) {
	var l Loadable[int]
	if !l.IsLoading() {
		t.Fatalf("zero value state = %v, want Loading", l.State())
	}
}

func TestStateAccessors(t *testing.T) {
	ready := Ready(42)
	if !ready.IsReady() || ready.IsLoading() || ready.IsErr() {
		t.Fatalf("Ready(42) reports wrong state")
	}
	if v, ok := ready.Value(); !ok || v != 42 {
		t.Fatalf("Ready(42).Value() = %d, %v, want 42, true", v, ok)
	}

	failed := Err[int](errors.New("boom"))
	if !failed.IsErr() {
		t.Fatalf("Err reports wrong state")
	}
	if failed.Error() == nil || failed.Error().Error() != "boom" {
		t.Fatalf("Err().Error() = %v, want boom", failed.Error())
	}
	if _, ok := failed.Value(); ok {
		t.Fatalf("Err().Value() reported a value")
	}
	if Loading[int]().Error() != nil {
		t.Fatalf("Loading().Error() != nil")
	}
}

func TestMapPreservesState(t *testing.T) {
	double := func(v int) int { return v * 2 }

	if v, _ := Map(Ready(21), double).Value(); v != 42 {
		t.Fatalf("Map(Ready(21)) = %d, want 42", v)
	}
	if !Map(Loading[int](), double).IsLoading() {
		t.Fatalf("Map(Loading) lost the Loading state")
	}

	cause := errors.New("boom")
	mapped := Map(Err[int](cause), double)
	if !mapped.IsErr() {
		t.Fatalf("Map(Err) lost the Err state")
	}
	if !errors.Is(mapped.Error(), cause) {
		t.Fatalf("Map(Err) did not carry the payload through by reference")
	}
}

func TestMarshalJSONTaggedForms(t *testing.T) {
	raw, err := json.Marshal(Ready("hello"))
	if err != nil {
		t.Fatalf("marshal ready: %v", err)
	}
	if got := string(raw); got != `{"type":"Ready","content":"hello"}` {
		t.Fatalf("ready json = %s", got)
	}

	raw, err = json.Marshal(Loading[string]())
	if err != nil {
		t.Fatalf("marshal loading: %v", err)
	}
	if got := string(raw); got != `{"type":"Loading"}` {
		t.Fatalf("loading json = %s", got)
	}

	type payload struct {
		Code string `json:"code"`
	}
	perr := &structErr{payload{Code: "offline"}}
	raw, err = json.Marshal(Err[string](perr))
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if got := string(raw); got != `{"type":"Err","error":{"code":"offline"}}` {
		t.Fatalf("err json = %s", got)
	}
}

type structErr struct {
	payload any
}

func (e *structErr) Error() string { return "structured" }

func (e *structErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.payload)
}
