package entities

import (
	"github.com/zooyer/cad2svg/core"
)

// Ray 射线：从 First 出发沿单位方向 Direction 无限延伸
type Ray struct {
	BaseEntity
	First     core.Point
	Direction core.Point
}

// XLine 构造线：过 First 沿 Direction 双向无限延伸
type XLine struct {
	BaseEntity
	First     core.Point
	Direction core.Point
}

func init() {
	Register("RAY", func() Entity { return &Ray{BaseEntity: BaseEntity{TypeName: "RAY"}} })
	Register("XLINE", func() Entity { return &XLine{BaseEntity: BaseEntity{TypeName: "XLINE"}} })
}

func parseDirected(s *core.Scanner, base *BaseEntity, first, dir *core.Point) {
	parse(s, base, func(t core.Tag) {
		switch t.Code {
		case 10:
			first.X = t.AsFloat()
		case 20:
			first.Y = t.AsFloat()
		case 11:
			dir.X = t.AsFloat()
		case 21:
			dir.Y = t.AsFloat()
		}
	})
}

func (r *Ray) Parse(s *core.Scanner) error {
	parseDirected(s, &r.BaseEntity, &r.First, &r.Direction)
	return nil
}

func (r *Ray) Accept(v Visitor) { v.VisitRay(r) }

func (x *XLine) Parse(s *core.Scanner) error {
	parseDirected(s, &x.BaseEntity, &x.First, &x.Direction)
	return nil
}

func (x *XLine) Accept(v Visitor) { v.VisitXLine(x) }
