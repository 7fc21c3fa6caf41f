package entities

import (
	"github.com/zooyer/cad2svg/core"
)

// Polyline 旧式多段线，顶点以 VERTEX 子实体给出，以 SEQEND 结束
type Polyline struct {
	BaseEntity
	Flag     int
	Vertices []core.Vertex
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
}

func (p *Polyline) Parse(s *core.Scanner) error {
	parse(s, &p.BaseEntity, func(t core.Tag) {
		if t.Code == 70 {
			p.Flag = t.AsInt()
		}
	})

	// 顶点只属于所在的多段线，不作为独立实体出现
	for s.LastTag.Code == 0 {
		switch s.LastTag.Value {
		case "VERTEX":
			p.Vertices = append(p.Vertices, parseVertex(s))
		case "SEQEND":
			skip(s)
			return s.Err()
		default:
			// 缺少 SEQEND，交给外层处理
			return s.Err()
		}
	}
	return s.Err()
}

// parseVertex 读取一个 VERTEX，返回时停在下一个 0 组码上
func parseVertex(s *core.Scanner) (v core.Vertex) {
	var base BaseEntity
	parse(s, &base, func(t core.Tag) {
		switch t.Code {
		case 10:
			v.X = t.AsFloat()
		case 20:
			v.Y = t.AsFloat()
		case 42:
			v.Bulge = t.AsFloat()
		}
	})
	return
}

func (p *Polyline) Closed() bool {
	return p.Flag&1 != 0
}

func (p *Polyline) Accept(v Visitor) { v.VisitPolyline(p) }
