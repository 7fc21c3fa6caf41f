package svg

import (
	"math"

	"github.com/zooyer/cad2svg/core"
	"github.com/zooyer/cad2svg/curve"
	"github.com/zooyer/cad2svg/entities"
	"github.com/zooyer/cad2svg/markup"
)

// infinite 射线与构造线延伸的长度
const infinite = 10000

// generator 把单个实体转换为片段，块参照从 blocks 中查找已转换的块
type generator struct {
	blocks  map[string]*Fragment
	density int
	result  *Fragment
}

func newGenerator(density int) *generator {
	return &generator{
		blocks:  make(map[string]*Fragment),
		density: density,
	}
}

// render 转换实体，统一处理镜像
func (g *generator) render(ent entities.Entity) *Fragment {
	g.result = nil
	ent.Accept(g)
	if g.result == nil {
		return nil
	}
	if ent.Base().Mirrored() {
		return g.result.Mirror()
	}
	return g.result
}

func (g *generator) emit(box core.BBox, m markup.Markup) {
	g.result = &Fragment{BBox: box, Markup: m}
}

func line(from, to core.Point) markup.Markup {
	return markup.Element("line").
		Attr("x1", from.X).Attr("y1", from.Y).
		Attr("x2", to.X).Attr("y2", to.Y).
		Markup()
}

func (g *generator) VisitLine(l *entities.Line) {
	g.emit(core.BBoxOf(l.Start, l.End), line(l.Start, l.End))
}

func (g *generator) VisitRay(r *entities.Ray) {
	end := r.First.Add(r.Direction.Scale(infinite))
	g.emit(core.BBoxOf(r.First, end), line(r.First, end))
}

func (g *generator) VisitXLine(x *entities.XLine) {
	from := x.First.Sub(x.Direction.Scale(infinite))
	to := x.First.Add(x.Direction.Scale(infinite))
	g.emit(core.BBoxOf(from, to), line(from, to))
}

func (g *generator) VisitCircle(c *entities.Circle) {
	box := core.BBoxOf(
		core.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
		core.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
	)
	g.emit(box, markup.Element("circle").
		Attr("cx", c.Center.X).Attr("cy", c.Center.Y).Attr("r", c.Radius).
		Markup())
}

func (g *generator) VisitArc(a *entities.Arc) {
	g.ellipse(curve.Arc(a.Center, a.Radius, a.StartAngle, a.EndAngle))
}

func (g *generator) VisitEllipse(e *entities.Ellipse) {
	g.ellipse(curve.Ellipse{
		Center: e.Center,
		Major:  e.MajorAxis,
		Ratio:  e.AxisRatio,
		Start:  e.StartAngle,
		End:    e.EndAngle,
	})
}

func (g *generator) ellipse(e curve.Ellipse) {
	box := e.BBox()
	deg := e.Rotation() * 180 / math.Pi

	if e.IsFull() {
		el := markup.Element("ellipse").
			Attr("cx", e.Center.X).Attr("cy", e.Center.Y).
			Attr("rx", e.RX()).Attr("ry", e.RY())
		g.emit(box, markup.Element("g").
			Attr("transform", markup.Transform(nil).Rotate(deg, e.Center.X, e.Center.Y)).
			Append(el.Markup()).
			Markup())
		return
	}

	start, end := e.Endpoints()
	var d markup.Path
	d.MoveTo(start).ArcTo(e.RX(), e.RY(), deg, e.LargeArc(), true, end)
	g.emit(box, markup.Element("path").Attr("d", &d).Markup())
}

func (g *generator) vertices(points []core.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	var d markup.Path
	for i, p := range points {
		if i == 0 {
			d.MoveTo(p)
		} else {
			d.LineTo(p)
		}
	}
	if closed {
		d.Close()
	}
	g.emit(core.BBoxOf(points...), markup.Element("path").Attr("d", &d).Markup())
}

func (g *generator) VisitLWPolyline(l *entities.LWPolyline) {
	closed := l.Closed()
	g.vertices(curve.InterpolatePolyline(l.Vertices, closed), closed)
}

// VisitPolyline 旧式多段线不渲染
func (g *generator) VisitPolyline(*entities.Polyline) {}

func (g *generator) VisitSpline(s *entities.Spline) {
	var points []core.Point
	for p := range curve.Tessellate(s.ControlPoints, s.Degree, s.Knots, s.Weights, g.density) {
		points = append(points, p)
	}
	g.vertices(points, false)
}

func (g *generator) VisitText(t *entities.Text) {
	g.emit(textLines(textBlock{
		lines:    []string{t.Value},
		fontSize: textFontSize(t.Height),
		at:       t.Start,
		width:    textWidth(t),
		anchor:   halignAnchor(t.HAlign),
	}))
}

func (g *generator) VisitMText(m *entities.MText) {
	g.emit(textLines(textBlock{
		lines:    markup.MTextLines(m.Value),
		fontSize: m.Height,
		at:       m.Insertion,
		width:    m.Width,
		anchor:   attachmentAnchor(m.Attachment),
	}))
}

func (g *generator) VisitTable(t *entities.Table) {
	g.emit(table(t))
}

func (g *generator) VisitInsert(i *entities.Insert) {
	block, ok := g.blocks[i.BlockName]
	if !ok {
		return
	}
	transform := markup.Translate(i.InsertionPoint.X, i.InsertionPoint.Y).
		Rotate(i.Rotation*180/math.Pi).
		Scale(i.Scale.X, i.Scale.Y)
	box := block.BBox.
		Transform(i.Scale, i.InsertionPoint).
		Rotate(i.Rotation, i.InsertionPoint)
	g.emit(box, markup.Element("use").
		Attr("href", "#"+i.BlockName).
		Attr("transform", transform).
		Markup())
}

func (g *generator) VisitDimension(d *entities.Dimension) {
	block, ok := g.blocks[d.BlockName]
	if !ok {
		return
	}
	g.emit(block.BBox, markup.Element("use").Attr("href", "#"+d.BlockName).Markup())
}

// VisitAttrib 属性值不单独渲染
func (g *generator) VisitAttrib(*entities.Attrib) {}
