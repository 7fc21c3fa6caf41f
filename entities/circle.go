package entities

import (
	"math"

	"github.com/zooyer/cad2svg/core"
)

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

// Arc 圆弧，角度为弧度（DXF 中为角度制，解析时转换）
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func init() {
	Register("CIRCLE", func() Entity { return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}} })
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
}

func (c *Circle) Parse(s *core.Scanner) error {
	parse(s, &c.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			c.Center.X = t.AsFloat()
		case 20:
			c.Center.Y = t.AsFloat()
		case 40:
			c.Radius = t.AsFloat()
		}
	})
	return nil
}

func (c *Circle) Accept(v Visitor) { v.VisitCircle(c) }

func (a *Arc) Parse(s *core.Scanner) error {
	parse(s, &a.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = radians(t.AsFloat())
		case 51:
			a.EndAngle = radians(t.AsFloat())
		}
	})
	return nil
}

func (a *Arc) Accept(v Visitor) { v.VisitArc(a) }

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
