package loxerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := Parsing(12, "Expect %s after %s.", "';'", "value")
	if got, want := err.Error(), "[line 12] ParsingError: Expect ';' after value."; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCategoryOf(t *testing.T) {
	wrapped := fmt.Errorf("run: %w", Runtime(1, "boom"))
	if cat, ok := CategoryOf(wrapped); !ok || cat != RuntimeError {
		t.Fatalf("CategoryOf(wrapped) = %q, %v; want RuntimeError, true", cat, ok)
	}
	if cat, ok := CategoryOf(Lexing(1, "x")); !ok || cat != LexingError {
		t.Fatalf("CategoryOf(lexing) = %q, %v", cat, ok)
	}
	if _, ok := CategoryOf(errors.New("plain")); ok {
		t.Fatalf("plain error should have no category")
	}
	if _, ok := CategoryOf(nil); ok {
		t.Fatalf("nil error should have no category")
	}
}
