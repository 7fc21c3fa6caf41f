package entities

import (
	"github.com/zooyer/cad2svg/core"
)

// FlagClosed 多段线闭合标志位
const FlagClosed = 0x200

type LWPolyline struct {
	BaseEntity
	Flag     int
	Vertices []core.Vertex
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	parse(s, &l.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 70:
			// DXF 中 bit 1 表示闭合
			if t.AsInt()&1 != 0 {
				l.Flag |= FlagClosed
			}
		case 10:
			l.Vertices = append(l.Vertices, core.Vertex{Point: core.Point{X: t.AsFloat()}})
		case 20:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Y = t.AsFloat()
			}
		case 42:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Bulge = t.AsFloat()
			}
		}
	})
	return nil
}

func (l *LWPolyline) Closed() bool {
	return l.Flag&FlagClosed != 0
}

func (l *LWPolyline) Accept(v Visitor) { v.VisitLWPolyline(l) }
