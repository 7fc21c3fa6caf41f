package entities

import (
	"github.com/zooyer/cad2svg/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}} })
}

func (l *Line) Parse(s *core.Scanner) error {
	parse(s, &l.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			l.Start.X = t.AsFloat()
		case 20:
			l.Start.Y = t.AsFloat()
		case 11:
			l.End.X = t.AsFloat()
		case 21:
			l.End.Y = t.AsFloat()
		}
	})
	return nil
}

func (l *Line) Accept(v Visitor) { v.VisitLine(l) }
