package httpapi

import (
	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

type errorJSON struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Path  string `json:"path,omitempty"`
	Node  string `json:"node,omitempty"`
}

type sceneInfo struct {
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Source string `json:"source"`
}

type rectJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func newRectJSON(r core.RectF) rectJSON {
	return rectJSON{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

type stretchJSON struct {
	Mode            string  `json:"mode"`
	XMargin         float64 `json:"x_margin,omitempty"`
	YMargin         float64 `json:"y_margin,omitempty"`
	KeepAspectRatio bool    `json:"keep_aspect_ratio,omitempty"`
}

type textJSON struct {
	Text     string     `json:"text"`
	Font     string     `json:"font"`
	FontSize float64    `json:"font_size"`
	Color    [4]float64 `json:"color"`
	Align    string     `json:"align"`
}

type nodeJSON struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Parent     string      `json:"parent,omitempty"`
	Children   []string    `json:"children,omitempty"`
	Anchor     string      `json:"anchor"`
	Pivot      string      `json:"pivot"`
	Stretch    stretchJSON `json:"stretch"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Z          float64     `json:"z"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Background *[4]float64 `json:"background,omitempty"`
	Text       *textJSON   `json:"text,omitempty"`
}

type documentJSON struct {
	Name     string     `json:"name"`
	Title    string     `json:"title,omitempty"`
	Checksum string     `json:"checksum"`
	Nodes    []nodeJSON `json:"nodes"`
}

func colorArray(c core.Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func newDocumentJSON(doc *scene.Document) documentJSON {
	out := documentJSON{
		Name:     doc.Name,
		Title:    doc.Title,
		Checksum: doc.Checksum,
		Nodes:    make([]nodeJSON, 0, doc.Len()),
	}

	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		t := n.Transform
		nj := nodeJSON{
			ID:     t.ID,
			Kind:   n.Kind.String(),
			Anchor: t.Anchor.String(),
			Pivot:  t.Pivot.String(),
			Stretch: stretchJSON{
				Mode:            t.Stretch.Mode.String(),
				XMargin:         t.Stretch.XMargin,
				YMargin:         t.Stretch.YMargin,
				KeepAspectRatio: t.Stretch.KeepAspectRatio,
			},
			X: t.X, Y: t.Y, Z: t.Z,
			Width: t.Width, Height: t.Height,
		}
		if n.Parent >= 0 {
			nj.Parent = doc.Nodes[n.Parent].ID()
		}
		for _, c := range n.Children {
			nj.Children = append(nj.Children, doc.Nodes[c].ID())
		}

		switch n.Kind {
		case scene.KindContainer:
			if !n.Background.IsTransparent() {
				bg := colorArray(n.Background)
				nj.Background = &bg
			}
		case scene.KindLabel:
			nj.Text = &textJSON{
				Text:     n.Text.Text,
				Font:     n.Text.Font.String(),
				FontSize: n.Text.FontSize,
				Color:    colorArray(n.Text.Color),
				Align:    n.Text.Align.String(),
			}
		}

		out.Nodes = append(out.Nodes, nj)
	}

	return out
}

type layoutJSON struct {
	Scene    string              `json:"scene"`
	Checksum string              `json:"checksum"`
	Viewport rectJSON            `json:"viewport"`
	Rects    map[string]rectJSON `json:"rects"`
}

func newLayoutJSON(doc *scene.Document, w, h float64, layout scene.Layout) layoutJSON {
	out := layoutJSON{
		Scene:    doc.Name,
		Checksum: doc.Checksum,
		Viewport: rectJSON{W: w, H: h},
		Rects:    make(map[string]rectJSON, len(layout)),
	}
	for id, r := range layout {
		out.Rects[id] = newRectJSON(r)
	}
	return out
}
