// Package listlayout describes a list (rows, row types and their dividers) in a yaml file and renders it with a list view.
package listlayout

import (
	"bytes"
	"fmt"
	"image/color"
	"io/ioutil"

	"github.com/jmigpin/listdivider/util/imageutil"
	"github.com/jmigpin/listdivider/util/uiutil/widget"
	"gopkg.in/yaml.v3"
)

// Type divider value that selects the theme default divider.
const DefaultDivider = "default"

type File struct {
	Width         int                     `yaml:"width"`
	Height        int                     `yaml:"height"` // zero: fit the content
	Scroll        int                     `yaml:"scroll"`
	Padding       widget.Insets           `yaml:"padding"`
	RowMargin     widget.Insets           `yaml:"rowMargin"`
	Background    string                  `yaml:"background"`
	Graphics      map[string]*GraphicSpec `yaml:"graphics"`
	Types         []*TypeSpec             `yaml:"types"`
	First         string                  `yaml:"first"`
	Last          string                  `yaml:"last"`
	StopAfterLast bool                    `yaml:"stopAfterLast"`
	Rows          []*RowSpec              `yaml:"rows"`

	typeIds map[string]int
}

type GraphicSpec struct {
	Color     string `yaml:"color"`
	Thickness int    `yaml:"thickness"`
	Inset     struct {
		Left, Right int
	} `yaml:"inset"`

	// label graphic (thickness from the font)
	Label string `yaml:"label"`
	Fg    string `yaml:"fg"`
	Pad   int    `yaml:"pad"`
}

type TypeSpec struct {
	Name    string `yaml:"name"`
	Height  int    `yaml:"height"` // zero: text height
	Color   string `yaml:"color"`
	Fg      string `yaml:"fg"`
	Border  string `yaml:"border"`
	Divider string `yaml:"divider"` // graphic name
}

type RowSpec struct {
	Type string `yaml:"type"`
	Text string `yaml:"text"`
}

// Accepts a scalar with the type name. Mappings are checked for unknown keys since node decoding doesn't inherit the decoder known fields option.
func (rs *RowSpec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		rs.Type = n.Value
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			switch k.Value {
			case "type", "text":
			default:
				return fmt.Errorf("line %d: field %v not found in row", k.Line, k.Value)
			}
		}
	}
	type plain RowSpec
	return n.Decode((*plain)(rs))
}

//----------

func Load(filename string) (*File, error) {
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return f, nil
}

func Parse(src []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, err
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) check() error {
	if f.Width == 0 {
		f.Width = 240
	}
	if err := f.checkSize(); err != nil {
		return err
	}
	if _, err := f.background(); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	for name, gs := range f.Graphics {
		if gs == nil {
			return fmt.Errorf("graphics.%v: empty", name)
		}
		if gs.Thickness < 0 {
			return fmt.Errorf("graphics.%v.thickness: negative", name)
		}
		if err := checkColor(gs.Color); err != nil {
			return fmt.Errorf("graphics.%v.color: %w", name, err)
		}
		if err := checkColor(gs.Fg); err != nil {
			return fmt.Errorf("graphics.%v.fg: %w", name, err)
		}
	}

	f.typeIds = map[string]int{}
	for i, ts := range f.Types {
		if ts == nil || ts.Name == "" {
			return fmt.Errorf("types[%d].name: empty", i)
		}
		if _, ok := f.typeIds[ts.Name]; ok {
			return fmt.Errorf("types[%d].name: duplicate: %q", i, ts.Name)
		}
		if ts.Height < 0 {
			return fmt.Errorf("types[%d].height: negative", i)
		}
		for _, u := range [][2]string{{"color", ts.Color}, {"fg", ts.Fg}, {"border", ts.Border}} {
			if err := checkColor(u[1]); err != nil {
				return fmt.Errorf("types[%d].%v: %w", i, u[0], err)
			}
		}
		f.typeIds[ts.Name] = i
	}

	for i, rs := range f.Rows {
		if rs == nil {
			return fmt.Errorf("rows[%d]: empty", i)
		}
		if _, ok := f.typeIds[rs.Type]; !ok {
			return fmt.Errorf("rows[%d].type: unknown: %q", i, rs.Type)
		}
	}
	return nil
}

// Height can be zero (fit the content).
func (f *File) checkSize() error {
	if f.Width <= 0 || f.Height < 0 {
		return fmt.Errorf("bad size: %vx%v", f.Width, f.Height)
	}
	return nil
}

//----------

func (f *File) TypeId(name string) (int, bool) {
	id, ok := f.typeIds[name]
	return id, ok
}

func (f *File) TypeName(id int) string {
	if id < 0 || id >= len(f.Types) {
		return fmt.Sprintf("type%d", id)
	}
	return f.Types[id].Name
}

// Overrides the divider of a row type.
func (f *File) SetTypeDivider(typeName, graphic string) error {
	id, ok := f.TypeId(typeName)
	if !ok {
		return fmt.Errorf("unknown type: %q", typeName)
	}
	f.Types[id].Divider = graphic
	return nil
}

//----------

func (f *File) background() (color.Color, error) {
	if f.Background == "" {
		return widget.White, nil
	}
	return imageutil.ParseColor(f.Background)
}

//----------

func checkColor(s string) error {
	_, err := parseColor(s, nil)
	return err
}

func parseColor(s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	return imageutil.ParseColor(s)
}
