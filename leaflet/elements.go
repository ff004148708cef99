package leaflet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Element is a node of the map scene that materializes as JavaScript.
type Element interface {
	VarName() string
	writeScript(w io.Writer, parent string) error
}

// NewID returns a random identifier usable as part of a JavaScript name.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

type TileLayer struct {
	ID          string
	URL         string
	Attribution string
	MaxZoom     int
}

func NewTileLayer(url, attribution string) *TileLayer {
	return &TileLayer{ID: NewID(), URL: url, Attribution: attribution, MaxZoom: 19}
}

func (t *TileLayer) VarName() string {
	return "tile_layer_" + t.ID
}

func (t *TileLayer) writeScript(w io.Writer, parent string) error {
	options := map[string]any{
		"attribution": t.Attribution,
		"maxZoom":     t.MaxZoom,
	}

	_, err := fmt.Fprintf(w, "var %s = L.tileLayer(%s, %s).addTo(%s);\n",
		t.VarName(), jsValue(t.URL), jsValue(options), parent)
	return err
}

type PolyLine struct {
	ID     string
	Points []orb.Point
	Color  string
	Weight float64
}

func NewPolyLine(points []orb.Point, color string) *PolyLine {
	return &PolyLine{ID: NewID(), Points: points, Color: color, Weight: 3}
}

func (p *PolyLine) VarName() string {
	return "poly_line_" + p.ID
}

func (p *PolyLine) writeScript(w io.Writer, parent string) error {
	options := map[string]any{
		"color":  p.Color,
		"weight": p.Weight,
	}

	_, err := fmt.Fprintf(w, "var %s = L.polyline(%s, %s).addTo(%s);\n",
		p.VarName(), jsValue(latLngs(p.Points)), jsValue(options), parent)
	return err
}

// Icon is a Leaflet.awesome-markers icon.
type Icon struct {
	ID          string
	Prefix      string
	Name        string
	MarkerColor string
	IconColor   string
}

func NewIcon(name, markerColor string) *Icon {
	return &Icon{ID: NewID(), Prefix: "fa", Name: name, MarkerColor: markerColor, IconColor: "white"}
}

func (i *Icon) VarName() string {
	return "icon_" + i.ID
}

func (i *Icon) writeScript(w io.Writer, parent string) error {
	options := map[string]any{
		"prefix":      i.Prefix,
		"icon":        i.Name,
		"markerColor": i.MarkerColor,
		"iconColor":   i.IconColor,
	}

	_, err := fmt.Fprintf(w, "var %s = L.AwesomeMarkers.icon(%s);\n%s.setIcon(%s);\n",
		i.VarName(), jsValue(options), parent, i.VarName())
	return err
}

// Popup holds HTML content shown when its marker is clicked.
type Popup struct {
	ID       string
	Content  string
	MinWidth int
	MaxWidth int
}

func NewPopup(content string, minWidth, maxWidth int) *Popup {
	return &Popup{ID: NewID(), Content: content, MinWidth: minWidth, MaxWidth: maxWidth}
}

func (p *Popup) VarName() string {
	return "popup_" + p.ID
}

func (p *Popup) writeScript(w io.Writer, parent string) error {
	options := map[string]any{
		"minWidth": p.MinWidth,
		"maxWidth": p.MaxWidth,
	}

	htmlVar := "html_" + p.ID
	_, err := fmt.Fprintf(w,
		"var %[1]s = L.popup(%[2]s);\nvar %[3]s = document.createElement(\"div\");\n%[3]s.innerHTML = %[4]s;\n%[1]s.setContent(%[3]s);\n%[5]s.bindPopup(%[1]s);\n",
		p.VarName(), jsValue(options), htmlVar, jsValue(p.Content), parent)
	return err
}

type Marker struct {
	ID       string
	Location orb.Point
	Icon     *Icon
	Popup    *Popup
}

func NewMarker(location orb.Point) *Marker {
	return &Marker{ID: NewID(), Location: location}
}

func (m *Marker) VarName() string {
	return "marker_" + m.ID
}

func (m *Marker) writeScript(w io.Writer, parent string) error {
	if _, err := fmt.Fprintf(w, "var %s = L.marker(%s, {}).addTo(%s);\n",
		m.VarName(), jsValue(latLng(m.Location)), parent); err != nil {
		return err
	}

	if m.Icon != nil {
		if err := m.Icon.writeScript(w, m.VarName()); err != nil {
			return err
		}
	}

	if m.Popup != nil {
		if err := m.Popup.writeScript(w, m.VarName()); err != nil {
			return err
		}
	}

	return nil
}

// MarkerCluster groups markers that are drawn as clusters when zoomed out.
type MarkerCluster struct {
	ID      string
	Name    string
	markers []*Marker
}

func NewMarkerCluster(name string) *MarkerCluster {
	return &MarkerCluster{ID: NewID(), Name: name}
}

func (c *MarkerCluster) Add(markers ...*Marker) {
	c.markers = append(c.markers, markers...)
}

func (c *MarkerCluster) Markers() []*Marker {
	return c.markers
}

func (c *MarkerCluster) VarName() string {
	return "marker_cluster_" + c.ID
}

func (c *MarkerCluster) writeScript(w io.Writer, parent string) error {
	if _, err := fmt.Fprintf(w, "var %s = L.markerClusterGroup({});\n", c.VarName()); err != nil {
		return err
	}

	for _, m := range c.markers {
		if err := m.writeScript(w, c.VarName()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s.addTo(%s);\n", c.VarName(), parent)
	return err
}

// jsValue encodes v as a JavaScript literal. encoding/json escapes <, > and &,
// so the result can not terminate the surrounding script block.
func jsValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func latLng(p orb.Point) [2]float64 {
	return [2]float64{p.Lat(), p.Lon()}
}

func latLngs(points []orb.Point) [][2]float64 {
	result := make([][2]float64, len(points))
	for i, p := range points {
		result[i] = latLng(p)
	}
	return result
}
