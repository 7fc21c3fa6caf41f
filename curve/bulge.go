package curve

import (
	"math"

	"github.com/zooyer/cad2svg/core"
)

// bulgeStep 凸度圆弧的采样角步长（5 度）
const bulgeStep = 5 * math.Pi / 180

// InterpolatePolyline 把带凸度的轻量多段线展开成折线。
// 直线段保持不变；闭合时最后一个顶点的凸度作用于回到首点的线段。
func InterpolatePolyline(vertices []core.Vertex, closed bool) []core.Point {
	points := make([]core.Point, 0, len(vertices))
	for i, v := range vertices {
		points = append(points, v.Point)
		if i == len(vertices)-1 && !closed {
			break
		}
		if v.Bulge == 0 {
			continue
		}
		next := vertices[(i+1)%len(vertices)]
		points = append(points, bulgeArc(v.Point, next.Point, v.Bulge)...)
	}
	return points
}

// bulgeArc 返回 from 到 to 的圆弧内部采样点（不含两个端点）
func bulgeArc(from, to core.Point, bulge float64) []core.Point {
	chord := to.Sub(from)
	length := chord.Len()
	if length == 0 || math.IsNaN(bulge) || math.IsInf(bulge, 0) {
		return nil
	}

	theta := 4 * math.Atan(bulge)
	// 有符号半径，负凸度时圆心落在弦的另一侧
	radius := length / (2 * math.Sin(theta/2))
	dir := math.Atan2(chord.Y, chord.X) + math.Pi/2 - theta/2
	center := from.Add(core.Point{X: math.Cos(dir), Y: math.Sin(dir)}.Scale(radius))

	start := math.Atan2(from.Y-center.Y, from.X-center.X)
	r := math.Abs(radius)
	n := int(math.Ceil(math.Abs(theta)/bulgeStep - 1e-9))
	if n < 2 {
		return nil
	}

	arc := make([]core.Point, 0, n-1)
	for i := 1; i < n; i++ {
		a := start + theta*float64(i)/float64(n)
		arc = append(arc, core.Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	return arc
}
