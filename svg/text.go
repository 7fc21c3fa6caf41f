package svg

import (
	"math"
	"unicode/utf16"

	"github.com/zooyer/cad2svg/core"
	"github.com/zooyer/cad2svg/entities"
	"github.com/zooyer/cad2svg/markup"
)

const (
	// defaultFontSize 单行文字没有字高时使用
	defaultFontSize = 12
	// lineSpacing 行距为字高的倍数
	lineSpacing = 1.5
)

type textBlock struct {
	lines    []string
	fontSize float64
	at       core.Point
	width    float64
	anchor   string
}

func textFontSize(height float64) float64 {
	if height == 0 {
		return defaultFontSize
	}
	return height
}

// textWidth 优先使用第二对齐点给出的宽度，否则按字符数 × 字高估算
func textWidth(t *entities.Text) float64 {
	if t.End != nil {
		if w := t.End.X - t.Start.X; !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0 {
			return w
		}
	}
	return float64(len(utf16.Encode([]rune(t.Value)))) * textFontSize(t.Height)
}

func halignAnchor(halign int) string {
	switch halign {
	case entities.HAlignCenter:
		return "middle"
	case entities.HAlignRight:
		return "end"
	default:
		return "start"
	}
}

// attachmentAnchor 多行文字九个附着点：1-3 上、4-6 中、7-9 下，每行依次左中右
func attachmentAnchor(attachment int) string {
	switch attachment {
	case 2, 5, 8:
		return "middle"
	case 3, 6, 9:
		return "end"
	default:
		return "start"
	}
}

// flip 文字在 Y 轴翻转的坐标系中就地再翻转一次
func flip(x, y float64) markup.Transform {
	return markup.Translate(x, y).Scale(1, -1).Translate(-x, -y)
}

func textLines(tb textBlock) (core.BBox, markup.Markup) {
	step := tb.fontSize * lineSpacing
	box := core.BBoxOf(
		tb.at,
		core.Point{X: tb.at.X + tb.width, Y: tb.at.Y - float64(len(tb.lines))*step},
	)

	texts := make([]markup.Markup, 0, len(tb.lines))
	for i, l := range tb.lines {
		x, y := tb.at.X, tb.at.Y-float64(i)*step
		texts = append(texts, markup.Element("text").
			Attr("x", x).Attr("y", y).
			Attr("font-size", tb.fontSize).
			Attr("text-anchor", tb.anchor).
			Attr("transform", flip(x, y)).
			Text(l).
			Markup())
	}
	return box, markup.Join(texts, "\n")
}

func table(t *entities.Table) (core.BBox, markup.Markup) {
	var (
		children []markup.Markup
		y        = t.Origin.Y
		width    float64
		height   float64
	)

	for _, w := range t.ColumnWidths {
		width += w
	}
	for _, h := range t.RowHeights {
		height += h
	}

	border := func(x1, y1, x2, y2 float64) markup.Markup {
		return markup.Element("line").
			Attr("x1", x1).Attr("y1", y1).Attr("x2", x2).Attr("y2", y2).
			Attr("stroke", "black").Attr("stroke-width", "1").
			Markup()
	}

	for row := 0; row < t.Rows; row++ {
		h := at(t.RowHeights, row)
		x := t.Origin.X
		for col := 0; col < t.Columns; col++ {
			w := at(t.ColumnWidths, col)
			cell := t.Cell(row, col)
			if cell.Top {
				children = append(children, border(x, y, x+w, y))
			}
			if cell.Bottom {
				children = append(children, border(x, y+h, x+w, y+h))
			}
			if cell.Left {
				children = append(children, border(x, y, x, y+h))
			}
			if cell.Right {
				children = append(children, border(x+w, y, x+w, y+h))
			}

			tx, ty := x+w/2, y+h/2+cell.TextHeight/3
			children = append(children, markup.Element("text").
				Attr("x", tx).Attr("y", ty).
				Attr("font-size", cell.TextHeight).
				Attr("text-anchor", "middle").
				Attr("dominant-baseline", "middle").
				Attr("fill", "black").Attr("stroke", "none").
				Attr("transform", flip(tx, ty)).
				Text(cell.Text).
				Markup())
			x += w
		}
		y += h
	}

	box := core.BBoxOf(t.Origin, core.Point{X: t.Origin.X + width, Y: t.Origin.Y + height})
	return box, markup.Element("g").Append(children...).Markup()
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
