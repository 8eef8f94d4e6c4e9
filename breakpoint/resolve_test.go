package breakpoint

import (
	"slices"
	"testing"

	"go.uber.org/zap"

	"bpq/css"
)

func TestTable_Next(t *testing.T) {
	table := sampleTable(t, zap.NewNop())

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"xs", "sm", true},
		{"sm", "md", true},
		{"md", "lg", true},
		{"lg", "", false},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		got, ok := table.Next(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Next(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTable_Prev(t *testing.T) {
	table := sampleTable(t, zap.NewNop())

	if got, ok := table.Prev("md"); !ok || got != "sm" {
		t.Errorf("Prev(md) = %q, %v; want sm, true", got, ok)
	}
	if _, ok := table.Prev("xs"); ok {
		t.Error("Prev(xs) must not exist")
	}
	if _, ok := table.Prev("unknown"); ok {
		t.Error("Prev(unknown) must not exist")
	}
}

func TestTable_NextMinWidth(t *testing.T) {
	table := sampleTable(t, zap.NewNop())

	if got, ok := table.NextMinWidth("sm"); !ok || got != css.Px(768) {
		t.Errorf("NextMinWidth(sm) = %s, %v; want 768px, true", got, ok)
	}
	if _, ok := table.NextMinWidth("lg"); ok {
		t.Error("NextMinWidth(lg) must not exist")
	}
}

func TestTable_MaxWidth(t *testing.T) {
	table := sampleTable(t, zap.NewNop())

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"xs", "33.9375em", true},
		{"sm", "47.9375em", true},
		{"md", "61.9375em", true},
		{"lg", "", false},
	}

	for _, tt := range tests {
		got, ok := table.MaxWidth(tt.name)
		if ok != tt.wantOK {
			t.Fatalf("MaxWidth(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		if ok && got.String() != tt.want {
			t.Errorf("MaxWidth(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestTable_Accessors(t *testing.T) {
	table := sampleTable(t, zap.NewNop())

	if !slices.Equal(table.Names(), []string{"xs", "sm", "md", "lg"}) {
		t.Errorf("Names() = %v", table.Names())
	}
	if table.Zero().Name != "xs" {
		t.Errorf("Zero() = %s, want xs", table.Zero().Name)
	}
	if table.Largest().Name != "lg" {
		t.Errorf("Largest() = %s, want lg", table.Largest().Name)
	}
	if _, ok := table.Lookup("xl"); ok {
		t.Error("Lookup(xl) must fail")
	}
}
