// Package scenefile loads sprig scene graphs from YAML or JSON descriptions.
//
// A scene file is a tree of items:
//
//	name: root
//	children:
//	  - name: button
//	    mark: rect
//	    x: 10
//	    y: 10
//	    width: 80
//	    height: 24
//	    href: https://example.com
//	  - name: dot
//	    mark: symbol
//	    x: 200
//	    y: 40
//	    radius: 6
//	    tooltip: a dot
//
// An item without a mark is a group.
package scenefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/sprig"
	"gopkg.in/yaml.v3"
)

// Item is one node of a scene file.
type Item struct {
	Name        string       `yaml:"name" json:"name"`
	Mark        string       `yaml:"mark,omitempty" json:"mark,omitempty"`
	X           float64      `yaml:"x,omitempty" json:"x,omitempty"`
	Y           float64      `yaml:"y,omitempty" json:"y,omitempty"`
	Width       float64      `yaml:"width,omitempty" json:"width,omitempty"`
	Height      float64      `yaml:"height,omitempty" json:"height,omitempty"`
	Radius      float64      `yaml:"radius,omitempty" json:"radius,omitempty"`
	Points      [][2]float64 `yaml:"points,omitempty" json:"points,omitempty"`
	Z           int          `yaml:"z,omitempty" json:"z,omitempty"`
	Href        string       `yaml:"href,omitempty" json:"href,omitempty"`
	Tooltip     string       `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
	Exit        bool         `yaml:"exit,omitempty" json:"exit,omitempty"`
	Visible     *bool        `yaml:"visible,omitempty" json:"visible,omitempty"`
	Interactive *bool        `yaml:"interactive,omitempty" json:"interactive,omitempty"`
	Entity      uint32       `yaml:"entity,omitempty" json:"entity,omitempty"`
	Children    []Item       `yaml:"children,omitempty" json:"children,omitempty"`
}

// Load decodes a YAML scene from r and builds its node tree. YAML being a
// superset of JSON, JSON scenes load too.
func Load(r io.Reader) (*sprig.Node, error) {
	var root Item
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse scene: empty document")
		}
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return Build(root)
}

// LoadFile reads a scene from path. Files ending in .json are decoded as
// JSON, everything else as YAML.
func LoadFile(path string) (*sprig.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var root Item
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parse scene %s: %w", path, err)
		}
		return Build(root)
	}
	n, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Build converts a decoded item tree into nodes.
func Build(item Item) (*sprig.Node, error) {
	n, err := buildNode(item)
	if err != nil {
		return nil, err
	}
	for i, child := range item.Children {
		if n.Mark != sprig.MarkGroup {
			return nil, fmt.Errorf("item %q: only groups can have children", item.Name)
		}
		c, err := Build(child)
		if err != nil {
			return nil, fmt.Errorf("item %q child %d: %w", item.Name, i, err)
		}
		n.AddChild(c)
	}
	return n, nil
}

func buildNode(item Item) (*sprig.Node, error) {
	var n *sprig.Node
	switch sprig.MarkType(item.Mark) {
	case "", sprig.MarkGroup:
		n = sprig.NewGroup(item.Name)
		if item.Width > 0 || item.Height > 0 {
			n.HitShape = sprig.HitRect{Width: item.Width, Height: item.Height}
		}
	case sprig.MarkRect, sprig.MarkImage, sprig.MarkText:
		n = sprig.NewMark(item.Name, sprig.MarkType(item.Mark))
		n.Width, n.Height = item.Width, item.Height
	case sprig.MarkSymbol:
		if item.Radius <= 0 {
			return nil, fmt.Errorf("item %q: symbol needs a positive radius", item.Name)
		}
		n = sprig.NewSymbol(item.Name, item.Radius)
	case sprig.MarkPath:
		if len(item.Points) < 3 {
			return nil, fmt.Errorf("item %q: path needs at least 3 points", item.Name)
		}
		pts := make([]sprig.Vec2, len(item.Points))
		for i, p := range item.Points {
			pts[i] = sprig.Vec2{X: p[0], Y: p[1]}
		}
		n = sprig.NewPath(item.Name, pts)
	default:
		return nil, fmt.Errorf("item %q: unknown mark %q", item.Name, item.Mark)
	}

	n.X, n.Y = item.X, item.Y
	n.ZIndex = item.Z
	n.Href = item.Href
	if item.Tooltip != "" {
		n.Tooltip = item.Tooltip
	}
	n.Exit = item.Exit
	n.EntityID = item.Entity
	if item.Visible != nil {
		n.Visible = *item.Visible
	}
	if item.Interactive != nil {
		n.Interactive = *item.Interactive
	}
	return n, nil
}
