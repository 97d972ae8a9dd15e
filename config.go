// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// configStart matches the first line of the configuration block. The block may hold a
// background key too, but only "options:" opens it.
var configStart = regexp.MustCompile(`^options\s*:`)

// ConfigStage extracts the YAML configuration block trailing the diagram body:
//
//	options:
//	- "a": {fill: [[1, 0, 0, 0.5]]}
//	- "b|c": {frame: "#00f", width: 3, dash: true}
//	background: "#eee"
//
// Every option becomes a StyleRule, in order. The block is consumed so that later stages
// only see the diagram body.
type ConfigStage struct {
	stageBase
}

// NewConfigStage returns the config stage.
func NewConfigStage() *ConfigStage {
	return &ConfigStage{stageBase{name: "config"}}
}

// Run implements Stage.
func (s *ConfigStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	block, line, ok := findConfig(text)
	if !ok {
		return nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text.Residual(block)), &doc); err != nil {
		return s.malformed(text, block, err)
	}
	rules, err := s.rules(text, &doc, line)
	if err != nil {
		return err
	}
	if err := s.consume(text.Unconsumed(block)...); err != nil {
		return err
	}
	for _, r := range rules {
		s.emit(r)
	}
	return nil
}

// rules walks the decoded block. line is the 0 based line the block starts on.
func (s *ConfigStage) rules(text RawText, doc *yaml.Node, line int) ([]*StyleRule, error) {
	if len(doc.Content) == 0 {
		return nil, nil
	}
	spanOf := func(n *yaml.Node) Span {
		return text.lineSpan(text.lineStart(line + n.Line - 1))
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, s.malformed(text, spanOf(root), errors.New("configuration must be a mapping"))
	}
	var out []*StyleRule
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		switch k.Value {
		case "options":
			if v.Kind != yaml.SequenceNode {
				return nil, s.malformed(text, spanOf(v), errors.New("options must be a list"))
			}
			for _, item := range v.Content {
				if item.Kind != yaml.MappingNode {
					return nil, s.malformed(text, spanOf(item), errors.New("option must be a mapping of name to style"))
				}
				for j := 0; j+1 < len(item.Content); j += 2 {
					name, decl := item.Content[j], item.Content[j+1]
					st, err := decodeStyle(decl)
					if err != nil {
						return nil, s.malformed(text, spanOf(name), err)
					}
					out = append(out, &StyleRule{Pattern: name.Value, Style: st, Span: spanOf(name)})
				}
			}
		case "background":
			var c colorSpec
			if err := v.Decode(&c); err != nil {
				return nil, s.malformed(text, spanOf(v), err)
			}
			col := Color(c)
			out = append(out, &StyleRule{Pattern: BackgroundName, Style: Style{Fill: &col}, Span: spanOf(k)})
		default:
			return nil, s.malformed(text, spanOf(k), fmt.Errorf("unknown key %q", k.Value))
		}
	}
	return out, nil
}

// findConfig returns the span of the configuration block and the line it starts on.
func findConfig(text RawText) (Span, int, bool) {
	src := text.Source()
	for line, off := 0, 0; off < len(src); line++ {
		ls := text.lineSpan(off)
		if configStart.MatchString(text.Residual(ls)) {
			return Span{ls.Start, len(src)}, line, true
		}
		off = ls.End + 1
	}
	return Span{}, 0, false
}

// styleDecl is the YAML form of a Style.
type styleDecl struct {
	Fill  *colorSpec `yaml:"fill"`
	Frame *colorSpec `yaml:"frame"`
	Text  *colorSpec `yaml:"text"`
	Width float64    `yaml:"width"`
	Dash  *dashSpec  `yaml:"dash"`
}

var styleKeys = map[string]bool{"fill": true, "frame": true, "text": true, "width": true, "dash": true}

func decodeStyle(n *yaml.Node) (Style, error) {
	if n.Kind != yaml.MappingNode {
		return Style{}, errors.New("style must be a mapping")
	}
	for i := 0; i < len(n.Content); i += 2 {
		if !styleKeys[n.Content[i].Value] {
			return Style{}, fmt.Errorf("unknown style attribute %q", n.Content[i].Value)
		}
	}
	var decl styleDecl
	if err := n.Decode(&decl); err != nil {
		return Style{}, err
	}
	if decl.Width < 0 {
		return Style{}, fmt.Errorf("negative width %g", decl.Width)
	}
	st := Style{Width: decl.Width}
	if decl.Fill != nil {
		c := Color(*decl.Fill)
		st.Fill = &c
	}
	if decl.Frame != nil {
		c := Color(*decl.Frame)
		st.Frame = &c
	}
	if decl.Text != nil {
		c := Color(*decl.Text)
		st.Text = &c
	}
	if decl.Dash != nil {
		st.Dash = []float64(*decl.Dash)
	}
	return st, nil
}

// colorSpec accepts "#rgb", "#rrggbb", [r, g, b], [r, g, b, a] or a list of those, of which
// the first is used.
type colorSpec Color

func (c *colorSpec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		col, err := ParseColor(n.Value)
		if err != nil {
			return err
		}
		*c = colorSpec(col)
		return nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return errors.New("empty color list")
		}
		if first := n.Content[0]; first.Kind != yaml.ScalarNode || first.Tag == "!!str" {
			return c.UnmarshalYAML(n.Content[0])
		}
		var v []float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		col, err := colorFromComponents(v)
		if err != nil {
			return err
		}
		*c = colorSpec(col)
		return nil
	}
	return fmt.Errorf("line %d: can't read a color from %s", n.Line, strings.TrimSpace(n.Value))
}

// dashSpec accepts a boolean or a list of dash lengths.
type dashSpec []float64

func (d *dashSpec) UnmarshalYAML(n *yaml.Node) error {
	var on bool
	if err := n.Decode(&on); err == nil {
		if on {
			*d = dashSpec{4, 2}
		} else {
			*d = dashSpec{}
		}
		return nil
	}
	var v []float64
	if err := n.Decode(&v); err != nil {
		return err
	}
	for _, f := range v {
		if f <= 0 {
			return fmt.Errorf("dash length %g must be positive", f)
		}
	}
	*d = v
	return nil
}
