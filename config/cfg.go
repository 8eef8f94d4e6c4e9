package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// BreakpointEntry is a single named minimum width, kept as text until the
	// table is built.
	BreakpointEntry struct {
		Name     string `validate:"required"`
		MinWidth string `validate:"required"`
	}

	// BreakpointTable is an ordered YAML mapping of name to minimum width.
	BreakpointTable []BreakpointEntry

	BreakpointsConfig struct {
		Prefix       string          `yaml:"prefix"`
		BaseFontSize string          `yaml:"base_font_size" validate:"required"`
		Table        BreakpointTable `yaml:"table" validate:"min=1,dive"`
	}

	DeviceConfig struct {
		Width        string `yaml:"width" validate:"required"`
		Height       string `yaml:"height" validate:"required"`
		VendorAppend string `yaml:"vendor_append,omitempty"`
	}

	// DeviceTable maps device name to its dimensions. Unlike regular maps it
	// is replaced, not merged, when configuration file provides it.
	DeviceTable map[string]DeviceConfig

	NamingConfig struct {
		HiddenBelow       string `yaml:"hidden_below" validate:"required"`
		HiddenAbove       string `yaml:"hidden_above" validate:"required"`
		Device            string `yaml:"device" validate:"required"`
		DeviceOrientation string `yaml:"device_orientation" validate:"required"`
		VisiblePrint      string `yaml:"visible_print" validate:"required"`
		HiddenPrint       string `yaml:"hidden_print" validate:"required"`
	}

	Config struct {
		Version     int               `yaml:"version" validate:"eq=1"`
		Breakpoints BreakpointsConfig `yaml:"breakpoints"`
		Devices     DeviceTable       `yaml:"devices" validate:"dive"`
		Naming      NamingConfig      `yaml:"naming"`
		Logging     LoggingConfig     `yaml:"logging"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	HiddenBelowFieldName       TemplateFieldName = "hidden_below"
	HiddenAboveFieldName       TemplateFieldName = "hidden_above"
	DeviceFieldName            TemplateFieldName = "device"
	DeviceOrientationFieldName TemplateFieldName = "device_orientation"
	VisiblePrintFieldName      TemplateFieldName = "visible_print"
	HiddenPrintFieldName       TemplateFieldName = "hidden_print"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(HiddenBelowFieldName)),
	gencfg.WithDoNotExpandField(string(HiddenAboveFieldName)),
	gencfg.WithDoNotExpandField(string(DeviceFieldName)),
	gencfg.WithDoNotExpandField(string(DeviceOrientationFieldName)),
	gencfg.WithDoNotExpandField(string(VisiblePrintFieldName)),
	gencfg.WithDoNotExpandField(string(HiddenPrintFieldName)),
)

// UnmarshalYAML keeps breakpoints in the order they are written.
func (t *BreakpointTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: breakpoint table must be a mapping of name to minimum width", node.Line)
	}
	res := make(BreakpointTable, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: breakpoint %q must have scalar minimum width", v.Line, k.Value)
		}
		res = append(res, BreakpointEntry{Name: k.Value, MinWidth: v.Value})
	}
	*t = res
	return nil
}

// MarshalYAML writes breakpoints back as an ordered mapping.
func (t BreakpointTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.MinWidth},
		)
	}
	return node, nil
}

// UnmarshalYAML replaces the whole device table.
func (t *DeviceTable) UnmarshalYAML(node *yaml.Node) error {
	m := make(map[string]DeviceConfig)
	if err := node.Decode(&m); err != nil {
		return err
	}
	*t = m
	return nil
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
