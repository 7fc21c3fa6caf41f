package svg

import (
	"log/slog"
	"strings"

	"github.com/zooyer/cad2svg"
	"github.com/zooyer/cad2svg/colors"
	"github.com/zooyer/cad2svg/core"
	"github.com/zooyer/cad2svg/entities"
	"github.com/zooyer/cad2svg/markup"
	"github.com/zooyer/cad2svg/utils"
)

// Converter 把文档转换为 SVG。
// 块缓存只存在于单次 Convert 调用中，同一个 Converter 可以并发转换不同文档。
type Converter struct {
	opts options
}

func New(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{opts: o}
}

func (c *Converter) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return cad2svg.Logger()
}

// conversion 一次转换过程
type conversion struct {
	gen    *generator
	layers colors.Layers
}

// ViewBox 视口，y 轴已翻转
type ViewBox struct {
	X, Y, Width, Height float64
}

func (v ViewBox) String() string {
	return markup.Num(v.X) + " " + markup.Num(v.Y) + " " + markup.Num(v.Width) + " " + markup.Num(v.Height)
}

// ViewBoxOf 由模型空间包围盒计算视口，无效包围盒为全 0
func ViewBoxOf(box core.BBox) ViewBox {
	if !box.Valid {
		return ViewBox{}
	}
	return ViewBox{
		X:      box.Min.X,
		Y:      -box.Max.Y,
		Width:  box.Width(),
		Height: box.Height(),
	}
}

// Convert 先按块表顺序转换所有非模型空间块，最后转换模型空间
func (c *Converter) Convert(doc *cad2svg.Document) string {
	defs, ms := c.convert(doc)
	return document(defs, ms)
}

// Render 与 Convert 相同，另外返回模型空间的包围盒
func (c *Converter) Render(doc *cad2svg.Document) (string, core.BBox) {
	defs, ms := c.convert(doc)
	var box core.BBox
	if ms != nil {
		box = ms.BBox
	}
	return document(defs, ms), box
}

func (c *Converter) convert(doc *cad2svg.Document) (defs []markup.Markup, ms *Fragment) {
	if doc == nil {
		return nil, nil
	}

	log := c.logger()
	for _, ref := range utils.ForwardReferences(doc) {
		log.Warn("block reference dropped",
			"block", ref.Block,
			"handle", ref.Handle,
			"kind", ref.Kind,
			"name", ref.Name,
			"missing", ref.Missing)
	}

	conv := &conversion{
		gen:    newGenerator(c.opts.density),
		layers: doc,
	}

	var model *cad2svg.Block
	for _, block := range doc.Blocks {
		if cad2svg.IsModelSpace(block.Name) {
			model = block
			continue
		}
		// 块定义不按图层分组
		if f := conv.block(block, false); f != nil {
			defs = append(defs, f.Markup)
			conv.gen.blocks[block.Name] = f
		}
	}

	if model != nil {
		ms = conv.block(model, true)
	}
	log.Debug("svg converted", "blocks", len(conv.gen.blocks), "model", ms != nil)
	return defs, ms
}

func isText(ent entities.Entity) bool {
	switch ent.(type) {
	case *entities.Text, *entities.MText:
		return true
	}
	return false
}

// group 实体外层的 g，携带句柄与颜色
func (conv *conversion) group(ent entities.Entity, m markup.Markup) markup.Markup {
	base := ent.Base()
	color := colors.Resolve(base.Color, base.LayerName, conv.layers)

	g := markup.Element("g")
	if base.Handle != "" {
		g.Attr("id", base.Handle)
	}

	switch {
	case color.ByBlock && isText(ent):
		// 随块的文字不能继承外层的 fill="none"
		g.Attr("fill", colors.Black).Attr("stroke", "none")
	case color.ByBlock:
	default:
		fill := "none"
		if isText(ent) {
			fill = color.CSS
			if fill == "" || fill == "none" || strings.EqualFold(fill, "#ffffff") {
				fill = colors.Black
			}
		}
		g.Attr("stroke", color.CSS).Attr("fill", fill)
	}
	return g.Append(m).Markup()
}

// block 转换一个块，没有有效几何时返回 nil
func (conv *conversion) block(block *cad2svg.Block, byLayer bool) *Fragment {
	if block == nil || len(block.Entities) == 0 {
		return nil
	}

	var (
		box   core.BBox
		items []layered
	)
	for _, ent := range block.Entities {
		f := conv.gen.render(ent)
		if f == nil {
			continue
		}
		box = box.Union(f.BBox)
		items = append(items, layered{layer: ent.Layer(), markup: conv.group(ent, f.Markup)})
	}
	if !box.Valid {
		return nil
	}

	g := markup.Element("g").Attr("id", block.Name)
	if !byLayer {
		// 块参照把基点放到插入点上
		if base := block.Base; base != (core.Point{}) {
			g.Attr("transform", markup.Translate(-base.X, -base.Y))
			box = box.Transform(core.Point{X: 1, Y: 1}, core.Point{X: -base.X, Y: -base.Y})
		}
		for _, item := range items {
			g.Append(item.markup)
		}
		return &Fragment{BBox: box, Markup: g.Markup()}
	}

	buckets := groupByLayer(items)
	for _, name := range buckets.order {
		g.Append(markup.Element("g").
			Attr("id", LayerID(name)).
			Attr("data-layer-name", name).
			Append(buckets.items[name]...).
			Markup())
	}
	return &Fragment{BBox: box, Markup: g.Markup()}
}

func document(defs []markup.Markup, ms *Fragment) string {
	var (
		view ViewBox
		body = markup.Element("g").
			Attr("stroke-width", "0.1%").
			Attr("fill", "none").
			Attr("transform", markup.Transform(nil).Matrix(1, 0, 0, -1, 0, 0))
	)
	if ms != nil {
		view = ViewBoxOf(ms.BBox)
		body.Append(ms.Markup)
	}

	root := markup.Element("svg").
		Attr("xmlns", "http://www.w3.org/2000/svg").
		Attr("xmlns:xlink", "http://www.w3.org/1999/xlink").
		Attr("version", "1.1").
		Attr("preserveAspectRatio", "xMinYMin meet").
		Attr("viewBox", view).
		Attr("width", "100%").
		Attr("height", "100%").
		Append(
			markup.Element("defs").Append(defs...).Markup(),
			body.Markup(),
		)
	return `<?xml version="1.0"?>` + "\n" + root.String() + "\n"
}
