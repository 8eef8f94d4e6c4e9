package breakpoint

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bpq/common"
	"bpq/css"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		in   string
		want Query
	}{
		{"md", Named("md", common.DirectionUp)},
		{"md down", Named("md", common.DirectionDown)},
		{"md, only", Named("md", common.DirectionOnly)},
		{"(md, DOWN)", Named("md", common.DirectionDown)},
		{"  sm   up ", Named("sm", common.DirectionUp)},
		{"320", Width(css.Unitless(320), common.DirectionUp)},
		{"768px down", Width(css.Px(768), common.DirectionDown)},
		{"30em", Width(css.Em(30), common.DirectionUp)},
		{"Landscape", Orientation(common.OrientationLandscape)},
		{"portrait down", Orientation(common.OrientationPortrait)},
		{"retina", Retina()},
		{"2xl", Named("2xl", common.DirectionUp)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuery(tt.in, zap.NewNop())
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseQuery_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", ErrEmptyQuery},
		{"()", ErrEmptyQuery},
		{" , ", ErrEmptyQuery},
		{"md down extra", ErrMalformedQuery},
	}

	for _, tt := range tests {
		if _, err := ParseQuery(tt.in, nil); !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseQuery(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestParseQuery_UnknownDirection(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	got, err := ParseQuery("md sideways", zap.New(core))
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if got.Direction != common.DirectionUp {
		t.Errorf("Direction = %s, want up", got.Direction)
	}
	if logs.Len() != 1 {
		t.Errorf("expected 1 warning, got %d", logs.Len())
	}
}

func TestQuery_String(t *testing.T) {
	tests := []struct {
		q    Query
		want string
	}{
		{Named("md", common.DirectionOnly), "md only"},
		{Width(css.Px(320), common.DirectionDown), "320px down"},
		{Orientation(common.OrientationPortrait), "portrait"},
		{Retina(), "retina"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
