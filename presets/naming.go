package presets

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// Naming holds templates for generated class names. Templates are expanded
// with Values and may use slim-sprig functions.
type Naming struct {
	Prefix            string
	HiddenBelow       string
	HiddenAbove       string
	Device            string
	DeviceOrientation string
	VisiblePrint      string
	HiddenPrint       string
}

// DefaultNaming returns standard class name patterns.
func DefaultNaming(prefix string) Naming {
	return Naming{
		Prefix:            prefix,
		HiddenBelow:       "{{ .Prefix }}hidden-{{ .Name }}-below",
		HiddenAbove:       "{{ .Prefix }}hidden-{{ .Name }}-above",
		Device:            "{{ .Prefix }}{{ .Name }}",
		DeviceOrientation: "{{ .Prefix }}{{ .Name }}-{{ .Orientation }}",
		VisiblePrint:      "{{ .Prefix }}visible-print-{{ .Display }}",
		HiddenPrint:       "{{ .Prefix }}hidden-print",
	}
}

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Prefix      string
	Name        string
	Orientation string
	Display     string
}

type namer struct {
	prefix            string
	hiddenBelow       *template.Template
	hiddenAbove       *template.Template
	device            *template.Template
	deviceOrientation *template.Template
	visiblePrint      *template.Template
	hiddenPrint       *template.Template
}

func newNamer(n Naming) (*namer, error) {
	res := &namer{prefix: n.Prefix}
	for _, t := range []struct {
		name string
		text string
		dst  **template.Template
	}{
		{"hidden_below", n.HiddenBelow, &res.hiddenBelow},
		{"hidden_above", n.HiddenAbove, &res.hiddenAbove},
		{"device", n.Device, &res.device},
		{"device_orientation", n.DeviceOrientation, &res.deviceOrientation},
		{"visible_print", n.VisiblePrint, &res.visiblePrint},
		{"hidden_print", n.HiddenPrint, &res.hiddenPrint},
	} {
		if t.text == "" {
			return nil, fmt.Errorf("naming template %s is empty", t.name)
		}
		tmpl, err := template.New(t.name).Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(t.text)
		if err != nil {
			return nil, fmt.Errorf("unable to parse naming template %s: %w", t.name, err)
		}
		*t.dst = tmpl
	}
	return res, nil
}

func (n *namer) expand(tmpl *template.Template, values Values) (string, error) {
	values.Prefix = n.prefix

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand naming template %s: %w", tmpl.Name(), err)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("naming template %s produced empty name", tmpl.Name())
	}
	return buf.String(), nil
}
