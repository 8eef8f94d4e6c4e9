package state

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"bpq/breakpoint"
	"bpq/config"
	"bpq/css"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	return cfg
}

func TestLocalEnv_Prepare(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	env.Cfg = loadDefaults(t)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	if err := env.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if env.Synth == nil || env.Gen == nil {
		t.Fatal("Prepare() did not build synthesizer and generator")
	}

	if got := env.Synth.Table().Len(); got != 5 {
		t.Errorf("table length = %d, want 5", got)
	}
	if got := env.Synth.ConditionString("md"); got != "(min-width: 48em)" {
		t.Errorf("md condition = %q", got)
	}
	if got := env.Synth.ConditionString("sm only"); got != "(min-width: 34em) and (max-width: 47.9375em)" {
		t.Errorf("sm only condition = %q", got)
	}

	out := env.Gen.Stylesheet().String()
	if !strings.Contains(out, ".hidden-md-below") || !strings.Contains(out, ".ipad-landscape") {
		t.Errorf("unexpected stylesheet:\n%s", out)
	}
}

func TestLocalEnv_Prepare_NoConfig(t *testing.T) {
	env := &LocalEnv{}
	if err := env.Prepare(); err == nil {
		t.Error("Expected error without configuration")
	}
}

func TestLocalEnv_Prepare_NonZeroFirst(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Breakpoints.Table = config.BreakpointTable{
		{Name: "sm", MinWidth: "544px"},
		{Name: "md", MinWidth: "768px"},
	}
	env := &LocalEnv{Cfg: cfg, Log: zap.NewNop()}

	err := env.Prepare()
	if !errors.Is(err, breakpoint.ErrNonZeroFirst) {
		t.Errorf("Prepare() error = %v, want ErrNonZeroFirst", err)
	}
}

func TestLocalEnv_Prepare_BadWidth(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Breakpoints.Table = config.BreakpointTable{
		{Name: "xs", MinWidth: "0"},
		{Name: "sm", MinWidth: "wide"},
	}
	env := &LocalEnv{Cfg: cfg, Log: zap.NewNop()}

	err := env.Prepare()
	if !errors.Is(err, css.ErrNotDimension) {
		t.Errorf("Prepare() error = %v, want ErrNotDimension", err)
	}
}

func TestLocalEnv_Prepare_Degrades(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	cfg := loadDefaults(t)
	cfg.Breakpoints.BaseFontSize = "large"
	cfg.Devices = config.DeviceTable{
		"tv":    {Width: "1920px", Height: "1080px"},
		"watch": {Width: "tiny", Height: "40px"},
	}
	env := &LocalEnv{Cfg: cfg, Log: zap.New(core)}

	if err := env.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if got := env.Synth.Normalizer().Base(); got != css.Percent(100) {
		t.Errorf("base = %v, want 100%%", got)
	}
	if n := logs.FilterMessage("Bad base font size, using browser default").Len(); n != 1 {
		t.Errorf("base font size warnings = %d, want 1", n)
	}
	if n := logs.FilterMessage("Bad device width, skipping").Len(); n != 1 {
		t.Errorf("device warnings = %d, want 1", n)
	}
	// three toggles for the remaining device
	if got := len(env.Gen.Devices()); got != 3 {
		t.Errorf("device items = %d, want 3", got)
	}
}
