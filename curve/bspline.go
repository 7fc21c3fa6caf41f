package curve

import (
	"iter"

	"github.com/zooyer/cad2svg/core"
)

// DefaultDensity 每个节点区间的采样数
const DefaultDensity = 25

// Evaluate 计算有理 B 样条在归一化参数 t∈[0,1] 处的点（齐次坐标下的 de Boor 算法）。
// weights 为空时视为全 1，knots 为空时使用均匀节点。
func Evaluate(t float64, degree int, points []core.Point, knots, weights []float64) (core.Point, bool) {
	n := len(points)
	if degree < 1 || degree > n-1 {
		return core.Point{}, false
	}
	if len(weights) == 0 {
		weights = ones(n)
	}
	if len(weights) != n {
		return core.Point{}, false
	}
	if len(knots) == 0 {
		knots = uniformKnots(n + degree + 1)
	}
	if len(knots) != n+degree+1 {
		return core.Point{}, false
	}

	lo, hi := degree, len(knots)-1-degree
	low, high := knots[lo], knots[hi]
	t = t*(high-low) + low
	if t < low || t > high {
		return core.Point{}, false
	}

	// 找到 t 所在的节点区间
	s := lo
	for ; s < hi; s++ {
		if t >= knots[s] && t <= knots[s+1] {
			break
		}
	}

	// 转为齐次坐标
	v := make([][3]float64, n)
	for i, p := range points {
		w := weights[i]
		v[i] = [3]float64{p.X * w, p.Y * w, w}
	}

	for l := 1; l <= degree+1; l++ {
		for i := s; i > s-degree-1+l; i-- {
			var alpha float64
			if d := knots[i+degree+1-l] - knots[i]; d != 0 {
				alpha = (t - knots[i]) / d
			}
			for j := range v[i] {
				v[i][j] = (1-alpha)*v[i-1][j] + alpha*v[i][j]
			}
		}
	}

	if v[s][2] == 0 {
		return core.Point{}, false
	}
	return core.Point{X: v[s][0] / v[s][2], Y: v[s][1] / v[s][2]}, true
}

// Tessellate 把样条离散成折线点序列。
// 定义域为 [knots[degree], knots[len-1-degree]]，每个不同的节点区间采样 density+1 个点。
func Tessellate(points []core.Point, degree int, knots, weights []float64, density int) iter.Seq[core.Point] {
	if density <= 0 {
		density = DefaultDensity
	}
	if len(knots) == 0 {
		knots = uniformKnots(len(points) + degree + 1)
	}

	return func(yield func(core.Point) bool) {
		if degree < 0 || len(knots) < 2*degree+2 {
			return
		}

		domain := [2]float64{knots[degree], knots[len(knots)-1-degree]}
		span := domain[1] - domain[0]
		if span == 0 {
			return
		}

		segments := []float64{knots[degree]}
		for k := degree + 1; k < len(knots)-degree; k++ {
			if segments[len(segments)-1] != knots[k] {
				segments = append(segments, knots[k])
			}
		}

		for i := 1; i < len(segments); i++ {
			uMin, uMax := segments[i-1], segments[i]
			for k := 0; k <= density; k++ {
				u := float64(k)/float64(density)*(uMax-uMin) + uMin
				// 防止浮点漂移越界
				t := min(max((u-domain[0])/span, 0), 1)
				p, ok := Evaluate(t, degree, points, knots, weights)
				if !ok {
					return
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func uniformKnots(n int) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = float64(i)
	}
	return k
}
