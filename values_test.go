package candv

import (
	"reflect"
	"testing"
	"time"
)

type intValues struct {
	Values[int]
	ONE      *ValueConstant[int]
	TWO      *ValueConstant[int]
	ONE_DUB2 *ValueConstant[int]
	THREE    *ValueConstant[int]
	ONE_DUB1 *ValueConstant[int]
}

func newIntValues(t *testing.T) *intValues {
	t.Helper()
	return Register("FOO", &intValues{
		ONE:      NewValue(1),
		TWO:      NewValue(2),
		ONE_DUB2: NewValue(1),
		THREE:    NewValue(3),
		ONE_DUB1: NewValue(1),
	})
}

func TestGetByValue(t *testing.T) {
	foo := newIntValues(t)

	got, err := foo.GetByValue(2)
	if err != nil {
		t.Fatalf("GetByValue() error: %v", err)
	}
	if got != Member(foo.TWO) {
		t.Errorf("GetByValue() = %v, want %v", got, foo.TWO)
	}
}

func TestGetByValueFirstDeclaredMatchWins(t *testing.T) {
	foo := newIntValues(t)

	got, err := foo.GetByValue(1)
	if err != nil {
		t.Fatalf("GetByValue() error: %v", err)
	}
	if got != Member(foo.ONE) {
		t.Errorf("GetByValue() = %v, want the first declared match %v", got, foo.ONE)
	}
}

func TestGetByValueMissing(t *testing.T) {
	foo := newIntValues(t)

	_, err := foo.GetByValue(42)
	if err == nil {
		t.Fatal("GetByValue() expected an error")
	}
	if !IsValueNotFound(err) {
		t.Errorf("GetByValue() error %v should wrap ErrValueNotFound", err)
	}
}

func TestFilterByValue(t *testing.T) {
	foo := newIntValues(t)

	matched := foo.FilterByValue(1)
	var names []string
	for _, m := range matched {
		names = append(names, m.Name())
	}
	if want := []string{"ONE", "ONE_DUB2", "ONE_DUB1"}; !reflect.DeepEqual(names, want) {
		t.Errorf("FilterByValue() matched %v, want %v", names, want)
	}

	if got := foo.FilterByValue(42); got != nil {
		t.Errorf("FilterByValue() = %v, want nil", got)
	}
}

func TestValues(t *testing.T) {
	foo := newIntValues(t)

	if want := []int{1, 2, 1, 3, 1}; !reflect.DeepEqual(foo.AllValues(), want) {
		t.Errorf("AllValues() = %v, want %v", foo.AllValues(), want)
	}

	var values []int
	for v := range foo.IterValues() {
		values = append(values, v)
	}
	if want := []int{1, 2, 1, 3, 1}; !reflect.DeepEqual(values, want) {
		t.Errorf("IterValues() yielded %v, want %v", values, want)
	}
}

func TestValuesLookupThroughGroups(t *testing.T) {
	type levels struct {
		Values[int]
		LOW  *ValueConstant[int]
		HIGH *Group
	}

	l := Register("Levels", &levels{
		LOW: NewValue(1),
		HIGH: NewValue(2).ToGroup(
			M("EXTREME", NewValue(3)),
		),
	})

	got, err := l.GetByValue(2)
	if err != nil {
		t.Fatalf("GetByValue() error: %v", err)
	}
	if got != Member(l.HIGH) {
		t.Errorf("GetByValue() = %v, want the group %v", got, l.HIGH)
	}

	if want := []int{1, 2}; !reflect.DeepEqual(l.AllValues(), want) {
		t.Errorf("AllValues() = %v, want %v", l.AllValues(), want)
	}
}

func TestValueConstantToPrimitive(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name  string
		build func() Member
		want  map[string]any
	}{
		{
			name:  "scalar",
			build: func() Member { return NewValue(1) },
			want:  map[string]any{"name": "ONE", "value": 1},
		},
		{
			name:  "callable",
			build: func() Member { return NewValue(func() any { return 1 }) },
			want:  map[string]any{"name": "ONE", "value": 1},
		},
		{
			name: "time",
			build: func() Member {
				return NewValue(time.Date(1999, 12, 31, 23, 59, 59, 0, moscow))
			},
			want: map[string]any{"name": "ONE", "value": "1999-12-31T23:59:59+03:00"},
		},
		{
			name:  "nested primitiver",
			build: func() Member { return NewValue[any](NewSimple()) },
			want: map[string]any{
				"name":  "ONE",
				"value": map[string]any{"name": ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build()
			New("FOO", M("ONE", c))

			if got := c.ToPrimitive(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToPrimitive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerboseConstantToPrimitive(t *testing.T) {
	tests := []struct {
		name     string
		constant *VerboseConstant
		want     map[string]any
	}{
		{
			name:     "no metadata",
			constant: NewVerbose("", ""),
			want: map[string]any{
				"name":         "ONE",
				"verbose_name": nil,
				"help_text":    nil,
			},
		},
		{
			name:     "all metadata",
			constant: NewVerbose("Constant one", "The first one"),
			want: map[string]any{
				"name":         "ONE",
				"verbose_name": "Constant one",
				"help_text":    "The first one",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			New("FOO", M("ONE", tt.constant))
			if got := tt.constant.ToPrimitive(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToPrimitive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerboseValueConstant(t *testing.T) {
	c := NewVerboseValue(10, "Constant B", "A constant with everything")
	New("FOO", M("B", c))

	if c.Value() != 10 {
		t.Errorf("Value() = %d, want 10", c.Value())
	}
	if c.VerboseName() != "Constant B" {
		t.Errorf("VerboseName() = %q", c.VerboseName())
	}

	want := map[string]any{
		"name":         "B",
		"value":        10,
		"verbose_name": "Constant B",
		"help_text":    "A constant with everything",
	}
	if got := c.ToPrimitive(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToPrimitive() = %v, want %v", got, want)
	}
}

func TestVerboseValueGroup(t *testing.T) {
	src := NewVerboseValue(10, "Group B", "a full group")
	foo := New("FOO",
		M("A", NewSimple()),
		M("B", src.ToGroup(
			M("C", NewSimple()),
			M("D", NewSimple()),
		)),
	)

	b := mustGroup(t, foo, "B")
	if b.VerboseName() != "Group B" {
		t.Errorf("VerboseName() = %q, want %q", b.VerboseName(), "Group B")
	}
	if got, ok := memberValue[int](b); !ok || got != 10 {
		t.Errorf("group value = %d, %v, want 10, true", got, ok)
	}

	want := map[string]any{
		"name":         "B",
		"value":        10,
		"verbose_name": "Group B",
		"help_text":    "a full group",
		"items": []any{
			map[string]any{"name": "C"},
			map[string]any{"name": "D"},
		},
	}
	if got := b.ToPrimitive(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToPrimitive() = %v, want %v", got, want)
	}
}
