package scenefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/sprig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
name: root
children:
  - name: panel
    x: 100
    y: 50
    width: 200
    height: 200
    children:
      - name: button
        mark: rect
        x: 10
        y: 10
        width: 80
        height: 24
        href: https://example.com
        entity: 3
  - name: dot
    mark: symbol
    x: 20
    y: 20
    radius: 5
    tooltip: a dot
    z: 2
  - name: tri
    mark: path
    points: [[0, 0], [10, 0], [5, 10]]
    interactive: false
    exit: true
`

func TestLoad(t *testing.T) {
	root, err := Load(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, "root", root.Name)
	assert.Equal(t, sprig.MarkGroup, root.Mark)
	require.Equal(t, 3, root.NumChildren())

	panel := root.ChildAt(0)
	assert.Equal(t, sprig.HitRect{Width: 200, Height: 200}, panel.HitShape)
	require.Equal(t, 1, panel.NumChildren())

	button := panel.ChildAt(0)
	assert.Equal(t, sprig.MarkRect, button.Mark)
	assert.Equal(t, "https://example.com", button.Href)
	assert.Equal(t, uint32(3), button.EntityID)
	assert.Nil(t, button.Tooltip)

	dot := root.ChildAt(1)
	assert.Equal(t, sprig.HitCircle{Radius: 5}, dot.HitShape)
	assert.Equal(t, "a dot", dot.Tooltip)
	assert.Equal(t, 2, dot.ZIndex)

	tri := root.ChildAt(2)
	assert.False(t, tri.Interactive)
	assert.True(t, tri.Visible)
	assert.True(t, tri.Exit)
}

func TestLoadPicks(t *testing.T) {
	root, err := Load(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	p := sprig.NewPicker()
	got := p.Pick(root, 120, 70, 120, 70)
	require.Len(t, got, 2)
	assert.Equal(t, "button", got[0].Name)
	assert.Equal(t, "panel", got[1].Name)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty document"},
		{"syntax", "name: [", "parse scene"},
		{"unknown mark", "name: x\nmark: blob\n", "unknown mark"},
		{"symbol radius", "name: s\nmark: symbol\n", "positive radius"},
		{"path points", "name: p\nmark: path\npoints: [[0, 0]]\n", "at least 3 points"},
		{"leaf children", "name: r\nmark: rect\nchildren:\n  - name: c\n", "only groups"},
		{"nested", "name: root\nchildren:\n  - name: s\n    mark: symbol\n", "child 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sceneYAML), 0o644))
	root, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, root.NumChildren())

	jsonPath := filepath.Join(dir, "scene.json")
	doc := `{"name": "root", "children": [{"name": "a", "mark": "rect", "width": 4, "height": 4}]}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(doc), 0o644))
	root, err = LoadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, 1, root.NumChildren())
	assert.Equal(t, 4.0, root.ChildAt(0).Width)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read scene")
}
