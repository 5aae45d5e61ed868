package invariant_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/opal-lang/tokscan/core/invariant"
)

// expectPanic runs fn and returns the recovered panic message.
func expectPanic(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg = fmt.Sprintf("%v", r)
	}()
	fn()
	return ""
}

// TestPreconditionPass verifies Precondition does not panic when condition is true
func TestPreconditionPass(t *testing.T) {
	invariant.Precondition(true, "this should pass")
	invariant.Precondition(len("let") > 0, "keyword not empty")
}

// TestPreconditionFail verifies Precondition panics with kind, message and call site
func TestPreconditionFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Precondition(false, "token type must not be empty")
	})

	if !strings.Contains(msg, "PRECONDITION VIOLATION") {
		t.Errorf("expected PRECONDITION VIOLATION, got: %s", msg)
	}
	if !strings.Contains(msg, "token type must not be empty") {
		t.Errorf("expected custom message, got: %s", msg)
	}
	if !strings.Contains(msg, "at ") {
		t.Errorf("expected call site, got: %s", msg)
	}
}

func TestPostconditionFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Postcondition(false, "scan finished with %d buffered bytes", 3)
	})

	if !strings.Contains(msg, "POSTCONDITION VIOLATION") {
		t.Errorf("expected POSTCONDITION VIOLATION, got: %s", msg)
	}
	if !strings.Contains(msg, "scan finished with 3 buffered bytes") {
		t.Errorf("expected formatted message, got: %s", msg)
	}
}

func TestInvariantFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Invariant(false, "unhandled scan status %d", 9)
	})

	if !strings.Contains(msg, "INVARIANT VIOLATION") {
		t.Errorf("expected INVARIANT VIOLATION, got: %s", msg)
	}
}

// TestNotNil covers untyped and typed nils
func TestNotNil(t *testing.T) {
	str := "hello"
	invariant.NotNil(&str, "ptr")
	invariant.NotNil([]int{1}, "slice")

	msg := expectPanic(t, func() {
		var ptr *string
		invariant.NotNil(ptr, "table")
	})
	if !strings.Contains(msg, "table must not be nil") {
		t.Errorf("expected 'table must not be nil', got: %s", msg)
	}

	expectPanic(t, func() { invariant.NotNil(nil, "logger") })
}

func TestExpectNoError(t *testing.T) {
	invariant.ExpectNoError(nil, "building default table")

	msg := expectPanic(t, func() {
		invariant.ExpectNoError(errors.New("symbol partition mismatch"), "building default table")
	})
	if !strings.Contains(msg, "building default table must not fail: symbol partition mismatch") {
		t.Errorf("unexpected message: %s", msg)
	}
}
