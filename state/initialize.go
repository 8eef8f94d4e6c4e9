package state

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bpq/breakpoint"
	"bpq/config"
	"bpq/css"
	"bpq/presets"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// Prepare builds breakpoint synthesizer and preset generator from loaded
// configuration. Only problems which make the table unusable are returned,
// everything else is logged and skipped.
func (e *LocalEnv) Prepare() error {
	if e.Cfg == nil {
		return errors.New("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	entries, err := tableEntries(e.Cfg.Breakpoints.Table)
	if err != nil {
		return err
	}
	table, err := breakpoint.NewTable(entries, log)
	if err != nil {
		return fmt.Errorf("unable to build breakpoint table: %w", err)
	}

	base, err := css.ParseDimension(e.Cfg.Breakpoints.BaseFontSize)
	if err != nil {
		log.Warn("Bad base font size, using browser default",
			zap.String("value", e.Cfg.Breakpoints.BaseFontSize), zap.Error(err))
		base = css.Percent(100)
	}

	synth := breakpoint.NewSynthesizer(table, breakpoint.NewNormalizer(base, log), log)

	naming := presets.Naming{
		Prefix:            e.Cfg.Breakpoints.Prefix,
		HiddenBelow:       e.Cfg.Naming.HiddenBelow,
		HiddenAbove:       e.Cfg.Naming.HiddenAbove,
		Device:            e.Cfg.Naming.Device,
		DeviceOrientation: e.Cfg.Naming.DeviceOrientation,
		VisiblePrint:      e.Cfg.Naming.VisiblePrint,
		HiddenPrint:       e.Cfg.Naming.HiddenPrint,
	}
	gen, err := presets.NewGenerator(synth, devices(e.Cfg.Devices, log), naming, log)
	if err != nil {
		return fmt.Errorf("unable to prepare presets: %w", err)
	}

	e.Synth, e.Gen = synth, gen
	return nil
}

func tableEntries(table config.BreakpointTable) ([]breakpoint.Breakpoint, error) {
	entries := make([]breakpoint.Breakpoint, 0, len(table))
	for _, e := range table {
		d, err := css.ParseDimension(e.MinWidth)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: %w", e.Name, err)
		}
		entries = append(entries, breakpoint.Breakpoint{Name: e.Name, MinWidth: d})
	}
	return entries, nil
}

func devices(table config.DeviceTable, log *zap.Logger) []presets.Device {
	res := make([]presets.Device, 0, len(table))
	for name, d := range table {
		w, err := css.ParseDimension(d.Width)
		if err != nil {
			log.Warn("Bad device width, skipping", zap.String("device", name), zap.Error(err))
			continue
		}
		h, err := css.ParseDimension(d.Height)
		if err != nil {
			log.Warn("Bad device height, skipping", zap.String("device", name), zap.Error(err))
			continue
		}
		res = append(res, presets.Device{Name: name, Width: w, Height: h, VendorAppend: d.VendorAppend})
	}
	return res
}
