package entities

import (
	"github.com/zooyer/cad2svg/core"
)

// Dimension 标注，几何由组码 2 指向的匿名块（*D 开头）给出
type Dimension struct {
	BaseEntity
	BlockName         string  // 组码 2
	ActualMeasurement float64 // 组码 42
	Text              string  // 组码 1，"<>" 代表测量值
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: BaseEntity{TypeName: "DIMENSION"}}
	})
}

func (d *Dimension) Parse(scanner *core.Scanner) error {
	parse(scanner, &d.BaseEntity, func(tag core.Tag) {
		switch tag.Code {
		case 2:
			d.BlockName = tag.AsString()
		case 1:
			d.Text = tag.AsString()
		case 42:
			d.ActualMeasurement = tag.AsFloat()
		}
	})
	return nil
}

func (d *Dimension) Accept(v Visitor) { v.VisitDimension(d) }
