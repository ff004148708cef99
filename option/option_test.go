package option

import "testing"

func TestOption(t *testing.T) {
	none := None[int]()
	if none.IsSome() || !none.IsNone() {
		t.Fatalf("expected none")
	}
	if got := none.OrElse(3); got != 3 {
		t.Fatalf("expected fallback 3, got %d", got)
	}

	some := Some(7)
	if !some.IsSome() || some.Get() != 7 {
		t.Fatalf("expected some(7)")
	}
	if got := none.Or(some).Get(); got != 7 {
		t.Fatalf("expected or to pick some, got %d", got)
	}
	if got := some.Or(Some(1)).Get(); got != 7 {
		t.Fatalf("expected or to keep receiver, got %d", got)
	}
}

func TestGetNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	None[string]().Get()
}
