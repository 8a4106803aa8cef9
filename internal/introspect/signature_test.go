package introspect

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/funvibe/funact/internal/typesystem"
)

func keyProbeA() {}

func keyProbeB() {}

type recorder struct {
	calls []string
}

func (r *recorder) note(s string) {
	r.calls = append(r.calls, s)
}

func TestDescribe(t *testing.T) {
	t.Run("plain func", func(t *testing.T) {
		sig, err := Describe(func(a int, b string) {})
		if err != nil {
			t.Fatalf("Describe() error = %v", err)
		}
		if len(sig.Params) != 2 {
			t.Fatalf("len(Params) = %d, want 2", len(sig.Params))
		}
		if !sig.Params[0].Equal(typesystem.Of[int]()) || !sig.Params[1].Equal(typesystem.Of[string]()) {
			t.Errorf("Params = %s, want int, string", typesystem.NameList(sig.Params))
		}
		if !sig.Result.Equal(typesystem.Void) {
			t.Errorf("Result = %s, want void", sig.Result)
		}
		if sig.ParamName(0) != "arg0" || sig.ParamName(1) != "arg1" {
			t.Errorf("derived signatures should report positional names")
		}
	})

	t.Run("multi result func", func(t *testing.T) {
		sig, err := Describe(func() (int, error) { return 0, nil })
		if err != nil {
			t.Fatalf("Describe() error = %v", err)
		}
		want := typesystem.Generic(typesystem.Tuple, typesystem.Of[int](), typesystem.Of[error]())
		if !sig.Result.Equal(want) {
			t.Errorf("Result = %s, want %s", sig.Result, want)
		}
	})

	t.Run("variadic func keeps its raw parameter list", func(t *testing.T) {
		sig, err := Describe(func(vals ...any) {})
		if err != nil {
			t.Fatalf("Describe() error = %v", err)
		}
		if len(sig.Params) != 1 || !sig.Variadic {
			t.Fatalf("Params = %s, Variadic = %v", typesystem.NameList(sig.Params), sig.Variadic)
		}
		want := typesystem.Generic(typesystem.List, typesystem.Any)
		if !sig.Params[0].Equal(want) {
			t.Errorf("Params[0] = %s, want %s", sig.Params[0], want)
		}
	})

	t.Run("method value", func(t *testing.T) {
		r := &recorder{}
		sig, err := Describe(r.note)
		if err != nil {
			t.Fatalf("Describe() error = %v", err)
		}
		if len(sig.Params) != 1 || !sig.Params[0].Equal(typesystem.Of[string]()) {
			t.Errorf("Params = %s, want string", typesystem.NameList(sig.Params))
		}
	})

	t.Run("not callable", func(t *testing.T) {
		_, err := Describe(42)
		var nc *NotCallableError
		if !errors.As(err, &nc) {
			t.Fatalf("Describe(42) error = %v, want NotCallableError", err)
		}
		if _, err := Describe(nil); err == nil {
			t.Errorf("Describe(nil) should fail")
		}
	})

	t.Run("declared signature wins", func(t *testing.T) {
		userID := typesystem.AliasOf[int]("UserId")
		h := Declared(func(id int, note string) error { return nil }, userID, nil).WithNames("id", "note")
		sig, err := Describe(h)
		if err != nil {
			t.Fatalf("Describe() error = %v", err)
		}
		if !sig.Params[0].Equal(userID) {
			t.Errorf("Params[0] = %s, want UserId", sig.Params[0])
		}
		if sig.Params[1] != nil {
			t.Errorf("Params[1] = %v, want undeclared", sig.Params[1])
		}
		if sig.ParamName(0) != "id" || sig.ParamName(1) != "note" {
			t.Errorf("ParamNames = %v, want declared names", sig.ParamNames)
		}
		if sig.ParamName(2) != "arg2" {
			t.Errorf("ParamName(2) = %q, want arg2", sig.ParamName(2))
		}
		if !sig.Result.Equal(typesystem.Of[error]()) {
			t.Errorf("Result = %s, want error", sig.Result)
		}
	})
}

func TestKey(t *testing.T) {
	if Key(keyProbeA) != Key(keyProbeA) {
		t.Errorf("same func should share a key")
	}
	if Key(keyProbeA) == Key(keyProbeB) {
		t.Errorf("distinct funcs should not share a key")
	}
	if Key(42) != 0 {
		t.Errorf("non callable key = %d, want 0", Key(42))
	}
	if Key(Declared(keyProbeA)) != Key(keyProbeA) {
		t.Errorf("declared wrapper should share the key of its func")
	}
}

func TestFuncName(t *testing.T) {
	name := FuncName(keyProbeA)
	if !strings.Contains(name, "keyProbeA") {
		t.Errorf("FuncName = %q, want it to contain keyProbeA", name)
	}
	if FuncName(42) != "int" {
		t.Errorf("FuncName(42) = %q, want int", FuncName(42))
	}
}

func TestCall(t *testing.T) {
	t.Run("arguments reach the handler", func(t *testing.T) {
		var got string
		err := Call(func(s string, n int) { got = s + strconv.Itoa(n) }, []any{"x", 3})
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if got != "x3" {
			t.Errorf("handler saw %q, want %q", got, "x3")
		}
	})

	t.Run("arity mismatch", func(t *testing.T) {
		if err := Call(func(int) {}, nil); err == nil {
			t.Errorf("Call with missing arguments should fail")
		}
	})

	t.Run("unassignable argument", func(t *testing.T) {
		err := Call(func(int) {}, []any{"nope"})
		if err == nil || !strings.Contains(err.Error(), "not assignable") {
			t.Errorf("Call() error = %v, want an assignability failure", err)
		}
	})

	t.Run("nil argument to a nilable parameter", func(t *testing.T) {
		var gotNil bool
		err := Call(func(w io.Writer) { gotNil = w == nil }, []any{nil})
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if !gotNil {
			t.Errorf("handler should receive a nil writer")
		}
	})

	t.Run("nil argument to a value parameter", func(t *testing.T) {
		if err := Call(func(int) {}, []any{nil}); err == nil {
			t.Errorf("nil should not be passable as int")
		}
	})

	t.Run("interface parameter accepts an implementor", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := Call(func(w io.Writer) { w.Write([]byte("ok")) }, []any{buf})
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if buf.String() != "ok" {
			t.Errorf("buffer = %q, want %q", buf.String(), "ok")
		}
	})

	t.Run("variadic handler", func(t *testing.T) {
		var sum int
		err := Call(func(ns ...int) {
			for _, n := range ns {
				sum += n
			}
		}, []any{1, 2, 3})
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if sum != 6 {
			t.Errorf("sum = %d, want 6", sum)
		}
	})

	t.Run("handler error propagates", func(t *testing.T) {
		probe := errors.New("probe")
		err := Call(func() error { return probe }, nil)
		if !errors.Is(err, probe) {
			t.Errorf("Call() error = %v, want probe", err)
		}
	})

	t.Run("non error results are ignored", func(t *testing.T) {
		if err := Call(func() int { return 7 }, nil); err != nil {
			t.Errorf("Call() error = %v, want nil", err)
		}
	})

	t.Run("declared wrapper is invoked through its func", func(t *testing.T) {
		var got int
		h := Declared(func(n int) { got = n }, typesystem.Of[int]())
		if err := Call(h, []any{5}); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if got != 5 {
			t.Errorf("handler saw %d, want 5", got)
		}
	})
}
