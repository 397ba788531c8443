package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal fails the test if a and b are not deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual fails the test if a and b are deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// IsNil fails the test if err is not nil.
func IsNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorIs fails the test if err does not match target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match %v", err, target)
	}
}

// Panics fails the test if f does not panic with an error matching target.
func Panics(t *testing.T, f func(), target error) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("function did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic %v does not match %v", r, target)
		}
	}()
	f()
}
