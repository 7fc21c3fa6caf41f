package core

import "math"

// Point 代表平面上的一个点（CAD 的 WCS/OCS 投影到 XY 平面）
type Point struct {
	X, Y float64
}

// Vector 代表三维方向，目前只用于拉伸方向（组码 210/220/230）
type Vector struct {
	X, Y, Z float64
}

// Vertex 轻量多段线的顶点，Bulge 为到下一个顶点的凸度
type Vertex struct {
	Point
	Bulge float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len 向量长度
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// RotatePoint 绕原点旋转 angle 弧度
func RotatePoint(p Point, angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
