package breakpoint

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bpq/css"
)

func sampleEntries() []Breakpoint {
	return []Breakpoint{
		{Name: "xs", MinWidth: css.Unitless(0)},
		{Name: "sm", MinWidth: css.Px(544)},
		{Name: "md", MinWidth: css.Px(768)},
		{Name: "lg", MinWidth: css.Px(992)},
	}
}

func sampleTable(t *testing.T, log *zap.Logger) *Table {
	t.Helper()
	table, err := NewTable(sampleEntries(), log)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestAssertAscending(t *testing.T) {
	tests := []struct {
		name    string
		entries []Breakpoint
		want    int
		wantErr error
	}{
		{"well formed", sampleEntries(), 0, nil},
		{"single entry", []Breakpoint{{Name: "xs", MinWidth: css.Unitless(0)}}, 0, nil},
		{
			"mixed comparable units",
			[]Breakpoint{
				{Name: "xs", MinWidth: css.Unitless(0)},
				{Name: "sm", MinWidth: css.Em(30)},
				{Name: "md", MinWidth: css.Px(768)},
				{Name: "lg", MinWidth: css.Rem(62)},
			}, 0, nil,
		},
		{
			"one descending pair",
			[]Breakpoint{
				{Name: "xs", MinWidth: css.Unitless(0)},
				{Name: "sm", MinWidth: css.Px(768)},
				{Name: "md", MinWidth: css.Px(544)},
				{Name: "lg", MinWidth: css.Px(992)},
			}, 1, ErrNotAscending,
		},
		{
			"equal pair",
			[]Breakpoint{
				{Name: "xs", MinWidth: css.Unitless(0)},
				{Name: "sm", MinWidth: css.Px(768)},
				{Name: "md", MinWidth: css.Em(48)},
			}, 1, ErrNotAscending,
		},
		{
			"two violations",
			[]Breakpoint{
				{Name: "xs", MinWidth: css.Unitless(0)},
				{Name: "sm", MinWidth: css.Px(992)},
				{Name: "md", MinWidth: css.Px(768)},
				{Name: "lg", MinWidth: css.Px(768)},
			}, 2, ErrNotAscending,
		},
		{
			"incomparable units",
			[]Breakpoint{
				{Name: "xs", MinWidth: css.Unitless(0)},
				{Name: "sm", MinWidth: css.Percent(50)},
				{Name: "md", MinWidth: css.Px(768)},
			}, 1, ErrIncomparable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertAscending(tt.entries)
			if got := len(multierr.Errors(err)); got != tt.want {
				t.Fatalf("AssertAscending() reported %d diagnostics, want %d: %v", got, tt.want, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("AssertAscending() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Breakpoint
		wantErr error
	}{
		{"empty", nil, ErrEmptyTable},
		{
			"non zero first",
			[]Breakpoint{{Name: "sm", MinWidth: css.Px(544)}, {Name: "md", MinWidth: css.Px(768)}},
			ErrNonZeroFirst,
		},
		{
			"duplicate name",
			[]Breakpoint{{Name: "xs", MinWidth: css.Unitless(0)}, {Name: "xs", MinWidth: css.Px(768)}},
			ErrDuplicateName,
		},
		{
			"empty name",
			[]Breakpoint{{Name: "xs", MinWidth: css.Unitless(0)}, {Name: "", MinWidth: css.Px(768)}},
			ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.entries, zap.NewNop())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewTable() error = %v, want %v", err, tt.wantErr)
			}
			if table != nil {
				t.Error("NewTable() returned table together with error")
			}
		})
	}
}

func TestNewTable_ZeroWithUnit(t *testing.T) {
	entries := []Breakpoint{{Name: "small", MinWidth: css.Px(0)}, {Name: "medium", MinWidth: css.Em(40)}}
	if _, err := NewTable(entries, zap.NewNop()); err != nil {
		t.Fatalf("NewTable() error = %v, zero in px must be accepted", err)
	}
}

func TestNewTable_OrderingIsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	entries := []Breakpoint{
		{Name: "xs", MinWidth: css.Unitless(0)},
		{Name: "sm", MinWidth: css.Px(768)},
		{Name: "md", MinWidth: css.Px(544)},
	}
	table, err := NewTable(entries, zap.New(core))
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if logs.Len() != 1 {
		t.Errorf("expected 1 warning, got %d", logs.Len())
	}
}

func TestNewTable_CopiesEntries(t *testing.T) {
	entries := sampleEntries()
	table, err := NewTable(entries, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	entries[1].MinWidth = css.Px(1)
	if w, _ := table.Lookup("sm"); w != css.Px(544) {
		t.Errorf("table changed together with caller slice: sm = %s", w)
	}

	got := table.Entries()
	got[0].Name = "changed"
	if table.Zero().Name != "xs" {
		t.Error("Entries() must return a copy")
	}
}
