package leaflet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"text/template"

	"github.com/paulmach/orb"
	"github.com/tomfrankkirk/tourmapper/res"
)

var ErrInvalidID = errors.New("element id is not a valid identifier")

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Map is the root of a scene. It renders to a standalone HTML document with
// exactly one inline script block.
type Map struct {
	ID       string
	Title    string
	Center   orb.Point
	Zoom     int
	Options  map[string]any
	Tiles    *TileLayer
	children []Element
}

func NewMap(id string, center orb.Point, zoom int) *Map {
	return &Map{ID: id, Center: center, Zoom: zoom}
}

func (m *Map) VarName() string {
	return "map_" + m.ID
}

// Add appends elements that are drawn directly on the map.
func (m *Map) Add(elements ...Element) {
	m.children = append(m.children, elements...)
}

func (m *Map) Children() []Element {
	return m.children
}

// Script returns the JavaScript constructing the scene.
func (m *Map) Script() (string, error) {
	if !identifierPattern.MatchString(m.ID) {
		return "", fmt.Errorf("%w: map '%s'", ErrInvalidID, m.ID)
	}

	options := make(map[string]any, len(m.Options)+2)
	for k, v := range m.Options {
		options[k] = v
	}
	options["center"] = latLng(m.Center)
	options["zoom"] = m.Zoom

	encodedOptions, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("encode map options: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "var %s = L.map(%s, %s);\n", m.VarName(), jsValue(m.VarName()), encodedOptions)

	elements := m.children
	if m.Tiles != nil {
		elements = append([]Element{m.Tiles}, elements...)
	}

	for _, e := range elements {
		if err := checkIDs(e); err != nil {
			return "", err
		}
		if err := e.writeScript(&buf, m.VarName()); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

// Render writes the HTML document.
func (m *Map) Render(w io.Writer) error {
	script, err := m.Script()
	if err != nil {
		return err
	}

	tmpl, err := template.ParseFS(res.Templates, "templates/map.html")
	if err != nil {
		return fmt.Errorf("failed to load map template: %w", err)
	}

	return tmpl.Execute(w, map[string]any{
		"Title":  m.Title,
		"MapVar": m.VarName(),
		"Script": script,
	})
}

// RenderBytes renders the HTML document into memory.
func (m *Map) RenderBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkIDs(e Element) error {
	var ids []string

	switch v := e.(type) {
	case *TileLayer:
		ids = append(ids, v.ID)
	case *PolyLine:
		ids = append(ids, v.ID)
	case *MarkerCluster:
		ids = append(ids, v.ID)
		for _, m := range v.markers {
			if err := checkIDs(m); err != nil {
				return err
			}
		}
	case *Marker:
		ids = append(ids, v.ID)
		if v.Icon != nil {
			ids = append(ids, v.Icon.ID)
		}
		if v.Popup != nil {
			ids = append(ids, v.Popup.ID)
		}
	}

	for _, id := range ids {
		if !identifierPattern.MatchString(id) {
			return fmt.Errorf("%w: '%s'", ErrInvalidID, id)
		}
	}

	return nil
}
