package markup

import (
	"strings"

	"github.com/zooyer/cad2svg/core"
)

// Path 构造 path 的 d 属性
type Path struct {
	b strings.Builder
}

func (p *Path) MoveTo(pt core.Point) *Path {
	p.b.WriteString("M" + Num(pt.X) + "," + Num(pt.Y))
	return p
}

func (p *Path) LineTo(pt core.Point) *Path {
	p.b.WriteString("L" + Num(pt.X) + "," + Num(pt.Y))
	return p
}

// ArcTo 椭圆弧，rotation 为角度制
func (p *Path) ArcTo(rx, ry, rotation float64, large, sweep bool, pt core.Point) *Path {
	p.b.WriteString("A" + Num(rx) + " " + Num(ry) + " " + Num(rotation) + " " +
		flag(large) + " " + flag(sweep) + " " + Num(pt.X) + "," + Num(pt.Y))
	return p
}

func (p *Path) Close() *Path {
	p.b.WriteString("Z")
	return p
}

func (p *Path) String() string {
	return p.b.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
