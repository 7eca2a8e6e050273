package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayoutDoc is the root of a layouts/<name>.yaml document
type LayoutDoc struct {
	Name string     `yaml:"name"`
	Root NodeConfig `yaml:"root"`
}

// NodeConfig describes one element and its children
type NodeConfig struct {
	Kind string `yaml:"kind"` // panel, canvas, stackpanel, image
	Name string `yaml:"name"`

	Width  Dimension     `yaml:"width"`
	Height Dimension     `yaml:"height"`
	Margin *MarginConfig `yaml:"margin"`

	HorizontalAlignment string `yaml:"horizontalAlignment"`
	VerticalAlignment   string `yaml:"verticalAlignment"`
	Hidden              bool   `yaml:"hidden"`

	// Containers
	Fill string `yaml:"fill"`

	// StackPanel
	Spacing         float64 `yaml:"spacing"`
	Orientation     string  `yaml:"orientation"`
	TrailingSpacing bool    `yaml:"trailingSpacing"`

	// Image
	Source     string      `yaml:"source"`
	SourceSize *SizeConfig `yaml:"sourceSize"`
	Tint       string      `yaml:"tint"`

	// Canvas anchors, read when the parent is a canvas
	Canvas *AnchorConfig `yaml:"canvas"`

	Children []NodeConfig `yaml:"children"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnchorConfig struct {
	Left   *float64 `yaml:"left"`
	Top    *float64 `yaml:"top"`
	Right  *float64 `yaml:"right"`
	Bottom *float64 `yaml:"bottom"`
}

// Dimension is an explicit size in pixels. Omitted or "auto" leaves it unset.
type Dimension struct {
	Value float64
	Set   bool
}

// UnmarshalYAML accepts a number or the string "auto"
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a number or \"auto\"", value.Line)
	}
	s := strings.TrimSpace(value.Value)
	if s == "" || strings.EqualFold(s, "auto") {
		*d = Dimension{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid dimension %q: %w", value.Line, s, err)
	}
	*d = Dimension{Value: v, Set: true}
	return nil
}

// MarginConfig is either a single number for all sides or a mapping with
// all/left/top/right/bottom. Sides override all.
type MarginConfig struct {
	All    *float64 `yaml:"all"`
	Left   *float64 `yaml:"left"`
	Top    *float64 `yaml:"top"`
	Right  *float64 `yaml:"right"`
	Bottom *float64 `yaml:"bottom"`
}

// UnmarshalYAML accepts a scalar or a mapping
func (m *MarginConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var all float64
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("line %d: invalid margin: %w", value.Line, err)
		}
		*m = MarginConfig{All: &all}
		return nil
	}

	type plain MarginConfig
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = MarginConfig(p)
	return nil
}

// Sides resolves the four margin sides
func (m *MarginConfig) Sides() (left, top, right, bottom float64) {
	if m == nil {
		return 0, 0, 0, 0
	}
	side := func(v *float64) float64 {
		if v != nil {
			return *v
		}
		if m.All != nil {
			return *m.All
		}
		return 0
	}
	return side(m.Left), side(m.Top), side(m.Right), side(m.Bottom)
}
