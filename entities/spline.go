package entities

import (
	"github.com/zooyer/cad2svg/core"
)

type Spline struct {
	BaseEntity
	Degree        int
	Knots         []float64
	Weights       []float64
	ControlPoints []core.Point
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}} })
}

func (sp *Spline) Parse(s *core.Scanner) error {
	parse(s, &sp.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 71:
			sp.Degree = t.AsInt()
		case 40:
			sp.Knots = append(sp.Knots, t.AsFloat())
		case 41:
			sp.Weights = append(sp.Weights, t.AsFloat())
		case 10:
			sp.ControlPoints = append(sp.ControlPoints, core.Point{X: t.AsFloat()})
		case 20:
			if n := len(sp.ControlPoints); n > 0 {
				sp.ControlPoints[n-1].Y = t.AsFloat()
			}
		}
	})
	return nil
}

func (sp *Spline) Accept(v Visitor) { v.VisitSpline(sp) }
