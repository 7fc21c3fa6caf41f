package curve

import (
	"math"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/cad2svg/core"
)

const (
	// fullSweepEpsilon 起止角差小于该值视为完整椭圆
	fullSweepEpsilon = 1e-9
	// axisEpsilon 长轴分量小于该值视为与坐标轴对齐
	axisEpsilon = 1e-12
)

// Ellipse 椭圆或椭圆弧（圆弧为 Ratio=1、Major=(r,0) 的特例）。
// Major 为长轴端点相对圆心的向量，Start/End 为椭圆自身参数空间的弧度。
type Ellipse struct {
	Center     core.Point
	Major      core.Point
	Ratio      float64
	Start, End float64
}

// Arc 以圆弧参数构造
func Arc(center core.Point, radius, start, end float64) Ellipse {
	return Ellipse{
		Center: center,
		Major:  core.Point{X: radius},
		Ratio:  1,
		Start:  start,
		End:    end,
	}
}

func (e Ellipse) RX() float64 {
	return e.Major.Len()
}

func (e Ellipse) RY() float64 {
	return e.Ratio * e.RX()
}

// Rotation 长轴相对 X 轴的旋转弧度
func (e Ellipse) Rotation() float64 {
	return -math.Atan2(-e.Major.Y, e.Major.X)
}

// IsFull 起止角相同（模 2π）即为完整椭圆
func (e Ellipse) IsFull() bool {
	d := math.Mod(math.Abs(e.Start-e.End), 2*math.Pi)
	return xmath.Equal(d, 0, fullSweepEpsilon) || xmath.Equal(d, 2*math.Pi, fullSweepEpsilon)
}

// Endpoints 圆弧起点与终点
func (e Ellipse) Endpoints() (start, end core.Point) {
	rx, ry, rot := e.RX(), e.RY(), e.Rotation()
	at := func(angle float64) core.Point {
		offset := core.RotatePoint(core.Point{X: math.Cos(angle) * rx, Y: math.Sin(angle) * ry}, rot)
		return e.Center.Add(offset)
	}
	return at(e.Start), at(e.End)
}

// LargeArc 扫过角度大于 π 时为大弧
func (e Ellipse) LargeArc() bool {
	end := e.End
	if end < e.Start {
		end += 2 * math.Pi
	}
	return end-e.Start > math.Pi
}

// BBox 计算椭圆弧的紧包围盒：
// 候选角为 x/y 方向的极值角（长轴与坐标轴对齐时取四个象限角），
// 落在 [Start, End] 内的候选角连同起止角一起映射到世界坐标后求包围盒。
func (e Ellipse) BBox() core.BBox {
	start, end := e.Start, e.End
	if !finite(start, end, e.Ratio, e.Major.X, e.Major.Y, e.Center.X, e.Center.Y) {
		return core.BBox{}
	}
	for start < 0 {
		start += 2 * math.Pi
	}
	for end <= start {
		end += 2 * math.Pi
	}

	mx, my, r := e.Major.X, e.Major.Y, e.Ratio

	var angles []float64
	if math.Abs(mx) < axisEpsilon || math.Abs(my) < axisEpsilon {
		for i := 0; i < 4; i++ {
			angles = append(angles, float64(i)/2*math.Pi)
		}
	} else {
		a0 := math.Atan(-my*r/mx) - math.Pi
		a1 := math.Atan(mx*r/my) - math.Pi
		angles = []float64{a0, a1, a0 - math.Pi, a1 - math.Pi}
	}

	candidates := make([]float64, 0, len(angles)+2)
	for _, a := range angles {
		for a < start {
			a += 2 * math.Pi
		}
		if a <= end {
			candidates = append(candidates, a)
		}
	}
	candidates = append(candidates, start, end)

	var box core.BBox
	for _, a := range candidates {
		cos, sin := math.Cos(a), math.Sin(a)
		box = box.ExpandByPoint(core.Point{
			X: cos*mx - sin*my*r + e.Center.X,
			Y: cos*my + sin*mx*r + e.Center.Y,
		})
	}
	return box
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
