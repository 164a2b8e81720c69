package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal verifies that a and b are deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual verifies that a and b differ.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// True verifies that cond holds, reporting msg otherwise.
func True(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true: %s", msg)
	}
}

// False verifies that cond does not hold, reporting msg otherwise.
func False(t *testing.T, cond bool, msg string) {
	t.Helper()
	if cond {
		t.Fatalf("expected false: %s", msg)
	}
}

// IsNil verifies that err is nil.
func IsNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorIs verifies that err matches target in its chain.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v is not %v", err, target)
	}
}
