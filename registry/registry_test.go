package registry

import (
	"slices"
	"testing"
)

type enemy struct{ name string }

func TestRegisterUnregister(t *testing.T) {
	r := New[*enemy]()
	a, b, c := &enemy{"a"}, &enemy{"b"}, &enemy{"c"}

	r.Register(a)
	r.Register(b)
	r.Register(c)
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	if got := r.List(); !slices.Equal(got, []*enemy{a, b, c}) {
		t.Fatalf("List = %v", got)
	}

	if !r.Unregister(b) {
		t.Fatal("Unregister(b) = false")
	}
	if got := r.List(); !slices.Equal(got, []*enemy{a, c}) {
		t.Fatalf("List after unregister = %v", got)
	}
	if slices.Contains(r.List(), b) {
		t.Fatal("b still registered")
	}
	if r.Unregister(b) {
		t.Fatal("second Unregister(b) = true")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	r := New[*enemy]()
	a, b := &enemy{"a"}, &enemy{"b"}

	r.Register(a)
	r.Register(b)
	r.Register(a)
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}

	// Only the first matching entry goes away.
	r.Unregister(a)
	if got := r.List(); !slices.Equal(got, []*enemy{b, a}) {
		t.Fatalf("List = %v, want [b a]", got)
	}
}

func TestListIsSnapshot(t *testing.T) {
	r := New[*enemy]()
	a := &enemy{"a"}
	r.Register(a)

	list := r.List()
	list[0] = nil
	if got := r.List(); got[0] != a {
		t.Fatal("mutating the List result changed the registry")
	}
}

func TestClear(t *testing.T) {
	r := New[int]()
	for i := range 5 {
		r.Register(i)
	}
	if got := r.List(); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("List = %v", got)
	}

	r.Clear()
	if r.Len() != 0 || len(r.List()) != 0 {
		t.Fatal("Clear left entries behind")
	}
	r.Register(7)
	if got := r.List(); !slices.Equal(got, []int{7}) {
		t.Fatalf("List after Clear+Register = %v", got)
	}
}
