package entities

import (
	"github.com/zooyer/cad2svg/core"
)

// Ellipse 椭圆，MajorAxis 为长轴端点相对圆心的向量，起止参数为弧度
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point
	AxisRatio  float64
	StartAngle float64
	EndAngle   float64
}

func init() {
	Register("ELLIPSE", func() Entity {
		return &Ellipse{BaseEntity: BaseEntity{TypeName: "ELLIPSE"}, AxisRatio: 1}
	})
}

func (e *Ellipse) Parse(s *core.Scanner) error {
	parse(s, &e.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			e.Center.X = t.AsFloat()
		case 20:
			e.Center.Y = t.AsFloat()
		case 11:
			e.MajorAxis.X = t.AsFloat()
		case 21:
			e.MajorAxis.Y = t.AsFloat()
		case 40:
			e.AxisRatio = t.AsFloat()
		case 41:
			e.StartAngle = t.AsFloat()
		case 42:
			e.EndAngle = t.AsFloat()
		}
	})
	return nil
}

func (e *Ellipse) Accept(v Visitor) { v.VisitEllipse(e) }
