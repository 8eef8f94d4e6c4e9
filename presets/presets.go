// Package presets generates utility classes on top of breakpoint queries.
package presets

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"text/template"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"bpq/breakpoint"
	"bpq/common"
	"bpq/css"
)

const (
	deviceMedia = "only screen"
	printMedia  = "print"
)

// Device describes screen dimensions of a physical device. VendorAppend is
// added verbatim to every condition generated for the device, usually pixel
// ratio clauses starting with "and".
type Device struct {
	Name         string
	Width        css.Dimension
	Height       css.Dimension
	VendorAppend string
}

// Generator produces visibility toggles.
type Generator struct {
	synth   *breakpoint.Synthesizer
	devices []Device
	namer   *namer
	log     *zap.Logger
}

// NewGenerator checks naming templates and devices. Devices are emitted in
// natural order of their names.
func NewGenerator(synth *breakpoint.Synthesizer, devices []Device, naming Naming, log *zap.Logger) (*Generator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("presets")
	if synth == nil {
		return nil, errors.New("no breakpoint synthesizer")
	}

	n, err := newNamer(naming)
	if err != nil {
		return nil, err
	}

	devs := make([]Device, 0, len(devices))
	for _, d := range devices {
		name := slug.Make(d.Name)
		if name == "" {
			log.Warn("Device name is not usable as class name, skipping", zap.String("device", d.Name))
			continue
		}
		if slices.ContainsFunc(devs, func(o Device) bool { return o.Name == name }) {
			log.Warn("Duplicate device name, skipping", zap.String("device", d.Name), zap.String("slug", name))
			continue
		}
		d.Name = name
		devs = append(devs, d)
	}
	sort.SliceStable(devs, func(i, j int) bool {
		return natural.Less(devs[i].Name, devs[j].Name)
	})

	return &Generator{synth: synth, devices: devs, namer: n, log: log}, nil
}

// Stylesheet returns all toggles: breakpoints, devices, then print.
func (g *Generator) Stylesheet() *css.Stylesheet {
	sheet := &css.Stylesheet{}
	sheet.Append(g.Breakpoints()...)
	sheet.Append(g.Devices()...)
	sheet.Append(g.Print()...)
	g.log.Debug("Stylesheet generated", zap.Int("items", len(sheet.Items)))
	return sheet
}

// Breakpoints returns "hidden below" and "hidden above" toggles for every
// breakpoint in the table.
func (g *Generator) Breakpoints() []css.StylesheetItem {
	var items []css.StylesheetItem
	for _, name := range g.synth.Table().Names() {
		if id, ok := g.name(g.namer.hiddenBelow, Values{Name: name}); ok {
			items = append(items, g.synth.Wrap(breakpoint.Named(name, common.DirectionDown), hide(id))...)
		}
		if id, ok := g.name(g.namer.hiddenAbove, Values{Name: name}); ok {
			items = append(items, g.synth.Wrap(breakpoint.Named(name, common.DirectionUp), hide(id))...)
		}
	}
	return items
}

// Devices returns orientation agnostic, landscape and portrait toggles for
// every device. Conditions are built from device dimensions directly.
func (g *Generator) Devices() []css.StylesheetItem {
	var items []css.StylesheetItem
	for _, d := range g.devices {
		if id, ok := g.name(g.namer.device, Values{Name: d.Name}); ok {
			items = append(items, deviceBlock(deviceCondition(d, nil), id))
		}
		for _, o := range []common.Orientation{common.OrientationLandscape, common.OrientationPortrait} {
			if id, ok := g.name(g.namer.deviceOrientation, Values{Name: d.Name, Orientation: o.String()}); ok {
				items = append(items, deviceBlock(deviceCondition(d, &o), id))
			}
		}
	}
	return items
}

// Print returns print visibility toggles. They do not depend on breakpoints.
func (g *Generator) Print() []css.StylesheetItem {
	var (
		items   []css.StylesheetItem
		inPrint []css.Rule
	)
	for _, name := range common.DisplayNames() {
		id, ok := g.name(g.namer.visiblePrint, Values{Display: name})
		if !ok {
			continue
		}
		screen := hide(id)
		items = append(items, css.StylesheetItem{Rule: &screen})
		inPrint = append(inPrint, css.NewRule(css.ClassSelector(id), "display", css.KeywordValue(name+" !important")))
	}
	if id, ok := g.name(g.namer.hiddenPrint, Values{}); ok {
		inPrint = append(inPrint, hide(id))
	}
	if len(inPrint) > 0 {
		items = append(items, css.StylesheetItem{MediaBlock: &css.MediaBlock{
			Query: css.NewMediaQuery(printMedia, ""),
			Rules: inPrint,
		}})
	}
	return items
}

// name expands class name template, failures are reported and the toggle
// is skipped.
func (g *Generator) name(tmpl *template.Template, values Values) (string, bool) {
	id, err := g.namer.expand(tmpl, values)
	if err != nil {
		g.log.Warn("Toggle skipped", zap.Error(err))
		return "", false
	}
	return id, true
}

func deviceCondition(d Device, o *common.Orientation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(min-device-width: %s) and (max-device-width: %s)", d.Width, d.Height)
	if o != nil {
		fmt.Fprintf(&sb, " and (orientation: %s)", o.String())
	}
	if va := strings.TrimSpace(d.VendorAppend); va != "" {
		if !strings.HasPrefix(strings.ToLower(va), "and ") {
			sb.WriteString(" and")
		}
		sb.WriteString(" " + va)
	}
	return sb.String()
}

func deviceBlock(cond, id string) css.StylesheetItem {
	return css.StylesheetItem{MediaBlock: &css.MediaBlock{
		Query: css.NewMediaQuery(deviceMedia, cond),
		Rules: []css.Rule{hide(id)},
	}}
}

func hide(id string) css.Rule {
	return css.NewRule(css.ClassSelector(id), "display", css.KeywordValue("none !important"))
}
