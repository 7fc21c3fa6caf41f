package entities

import (
	"github.com/zooyer/cad2svg/core"
)

type Cell struct {
	Text       string
	TextHeight float64
	Top        bool
	Right      bool
	Bottom     bool
	Left       bool
}

// Table ACAD_TABLE，单元格按行优先存放
type Table struct {
	BaseEntity
	BlockName    string
	Origin       core.Point
	Rows         int
	Columns      int
	RowHeights   []float64
	ColumnWidths []float64
	Cells        []Cell
}

func init() {
	Register("ACAD_TABLE", func() Entity { return &Table{BaseEntity: BaseEntity{TypeName: "ACAD_TABLE"}} })
}

func (tb *Table) Parse(s *core.Scanner) error {
	parse(s, &tb.BaseEntity, func(t core.Tag) {
		cell := tb.current()
		switch t.Code {
		case 2:
			tb.BlockName = t.AsString()
		case 10:
			tb.Origin.X = t.AsFloat()
		case 20:
			tb.Origin.Y = t.AsFloat()
		case 91:
			// 进入单元格后 91/92 是单元格标志
			if cell == nil {
				tb.Rows = t.AsInt()
			}
		case 92:
			if cell == nil {
				tb.Columns = t.AsInt()
			}
		case 141:
			tb.RowHeights = append(tb.RowHeights, t.AsFloat())
		case 142:
			tb.ColumnWidths = append(tb.ColumnWidths, t.AsFloat())
		case 171:
			tb.Cells = append(tb.Cells, Cell{Top: true, Right: true, Bottom: true, Left: true})
		}
		if cell == nil {
			return
		}
		switch t.Code {
		case 1:
			cell.Text += t.Value
		case 140:
			cell.TextHeight = t.AsFloat()
		case 285:
			cell.Right = t.AsBool()
		case 286:
			cell.Bottom = t.AsBool()
		case 287:
			cell.Left = t.AsBool()
		case 288:
			cell.Top = t.AsBool()
		}
	})
	return nil
}

func (tb *Table) current() *Cell {
	if len(tb.Cells) == 0 {
		return nil
	}
	return &tb.Cells[len(tb.Cells)-1]
}

// Cell 越界或缺失的单元格返回无边框空单元格
func (tb *Table) Cell(row, col int) Cell {
	i := row*tb.Columns + col
	if row < 0 || col < 0 || col >= tb.Columns || i >= len(tb.Cells) {
		return Cell{}
	}
	return tb.Cells[i]
}

func (tb *Table) Accept(v Visitor) { v.VisitTable(tb) }
