package core

import "math"

// BBox 代表包围盒，Valid 为 false 时表示还没有吸收任何点
type BBox struct {
	Min, Max Point
	Valid    bool
}

// BBoxOf 由若干点构造包围盒
func BBoxOf(points ...Point) BBox {
	var box BBox
	for _, p := range points {
		box = box.ExpandByPoint(p)
	}
	return box
}

// ExpandByPoint 扩展包围盒使其包含 p
func (b BBox) ExpandByPoint(p Point) BBox {
	if !b.Valid {
		return BBox{Min: p, Max: p, Valid: true}
	}

	return BBox{
		Min:   Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max:   Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
		Valid: true,
	}
}

// Union 合并两个包围盒，无效的一方不参与
func (b BBox) Union(o BBox) BBox {
	if !o.Valid {
		return b
	}
	if !b.Valid {
		return o
	}

	return b.ExpandByPoint(o.Min).ExpandByPoint(o.Max)
}

// Transform 先按 scale 缩放坐标再平移 translation，重新求轴对齐包围盒
func (b BBox) Transform(scale, translation Point) BBox {
	if !b.Valid {
		return b
	}

	var out BBox
	for _, c := range b.corners() {
		out = out.ExpandByPoint(Point{
			X: c.X*scale.X + translation.X,
			Y: c.Y*scale.Y + translation.Y,
		})
	}
	return out
}

// Rotate 四个角点绕 pivot 旋转 angle 弧度后重新求轴对齐包围盒
func (b BBox) Rotate(angle float64, pivot Point) BBox {
	if !b.Valid {
		return b
	}

	var out BBox
	for _, c := range b.corners() {
		out = out.ExpandByPoint(pivot.Add(RotatePoint(c.Sub(pivot), angle)))
	}
	return out
}

// Mirror 关于 Y 轴镜像（x 取反），用于拉伸方向 Z=-1 的实体
func (b BBox) Mirror() BBox {
	if !b.Valid {
		return b
	}

	return BBoxOf(
		Point{X: -b.Min.X, Y: b.Min.Y},
		Point{X: -b.Max.X, Y: b.Max.Y},
	)
}

func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (b BBox) corners() [4]Point {
	return [4]Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}
