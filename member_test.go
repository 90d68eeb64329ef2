package candv

import (
	"reflect"
	"testing"
)

func TestSimpleConstantUnbound(t *testing.T) {
	c := NewSimple()

	if c.Name() != "" {
		t.Errorf("Name() = %q, want empty", c.Name())
	}
	if c.Container() != nil {
		t.Errorf("Container() = %v, want nil", c.Container())
	}
	if got, want := c.FullName(), "__UNBOUND__.<unnamed>"; got != want {
		t.Errorf("FullName() = %q, want %q", got, want)
	}
	if got, want := c.String(), "<constant '__UNBOUND__.<unnamed>'>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSimpleConstantBound(t *testing.T) {
	foo := New("FOO", M("CONSTANT", NewSimple()))
	c, err := foo.Get("CONSTANT")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if c.Name() != "CONSTANT" {
		t.Errorf("Name() = %q, want %q", c.Name(), "CONSTANT")
	}
	if got, want := c.FullName(), "FOO.CONSTANT"; got != want {
		t.Errorf("FullName() = %q, want %q", got, want)
	}
	if got, want := c.String(), "<constant 'FOO.CONSTANT'>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c.Container().(*Constants) != foo {
		t.Error("Container() should be the owning container")
	}
}

func TestSimpleConstantToPrimitive(t *testing.T) {
	foo := New("FOO", M("CONSTANT", NewSimple()))
	c, _ := foo.Get("CONSTANT")

	want := map[string]any{"name": "CONSTANT"}
	if got := c.ToPrimitive(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToPrimitive() = %v, want %v", got, want)
	}
}

func TestEqual(t *testing.T) {
	foo := New("FOO", M("A", NewSimple()), M("B", NewSimple()))
	bar := New("BAR", M("A", NewSimple()))

	fooA, _ := foo.Get("A")
	fooB, _ := foo.Get("B")
	barA, _ := bar.Get("A")

	tests := []struct {
		name   string
		a, b   Member
		expect bool
	}{
		{"same member", fooA, fooA, true},
		{"different members", fooA, fooB, false},
		{"same name, different containers", fooA, barA, false},
		{"nil left", nil, fooA, false},
		{"nil right", fooA, nil, false},
		{"both nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expect {
				t.Errorf("Equal() = %v, want %v", got, tt.expect)
			}
		})
	}
}
