package core

import (
	"math"
	"testing"
)

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestBBox_ExpandOrderIndependent(t *testing.T) {
	points := []Point{{3, -1}, {-2, 4}, {0, 0}, {7, 2}, {-5, -6}}

	forward := BBoxOf(points...)

	var backward BBox
	for i := len(points) - 1; i >= 0; i-- {
		backward = backward.ExpandByPoint(points[i])
	}

	split := BBoxOf(points[:2]...).Union(BBoxOf(points[2:]...))

	want := BBox{Min: Point{-5, -6}, Max: Point{7, 4}, Valid: true}
	for name, got := range map[string]BBox{"forward": forward, "backward": backward, "split": split} {
		if got != want {
			t.Errorf("%s: 期望 %+v, 得到 %+v", name, want, got)
		}
	}
}

func TestBBox_UnionWithEmpty(t *testing.T) {
	box := BBoxOf(Point{1, 2}, Point{3, 4})

	if got := (BBox{}).Union(box); got != box {
		t.Errorf("空盒 ∪ box: 得到 %+v", got)
	}
	if got := box.Union(BBox{}); got != box {
		t.Errorf("box ∪ 空盒: 得到 %+v", got)
	}
	if got := (BBox{}).Union(BBox{}); got.Valid {
		t.Errorf("空盒 ∪ 空盒 应无效: %+v", got)
	}
}

func TestBBox_TransformAndRotate(t *testing.T) {
	// 半径 5 的圆，插入点 (100,100)，比例 2
	circle := BBoxOf(Point{-5, -5}, Point{5, 5})
	pivot := Point{100, 100}

	got := circle.Transform(Point{2, 2}, pivot).Rotate(0, pivot)
	want := BBox{Min: Point{90, 90}, Max: Point{110, 110}, Valid: true}
	if got != want {
		t.Fatalf("期望 %+v, 得到 %+v", want, got)
	}

	// 非均匀、负比例
	got = BBoxOf(Point{0, 0}, Point{10, 5}).Transform(Point{-1, 3}, Point{1, 1})
	if !near(got.Min, Point{-9, 1}) || !near(got.Max, Point{1, 16}) {
		t.Errorf("负比例变换错误: %+v", got)
	}

	// 绕原点旋转 90 度
	got = BBoxOf(Point{0, 0}, Point{10, 5}).Rotate(math.Pi/2, Point{})
	if !near(got.Min, Point{-5, 0}) || !near(got.Max, Point{0, 10}) {
		t.Errorf("旋转错误: %+v", got)
	}

	if (BBox{}).Transform(Point{2, 2}, pivot).Valid || (BBox{}).Rotate(1, pivot).Valid {
		t.Error("无效盒变换后应仍无效")
	}
}

func TestBBox_Mirror(t *testing.T) {
	got := BBoxOf(Point{0, 0}, Point{10, 5}).Mirror()
	want := BBox{Min: Point{-10, 0}, Max: Point{0, 5}, Valid: true}
	if got != want {
		t.Errorf("期望 %+v, 得到 %+v", want, got)
	}
}

func TestRotatePoint(t *testing.T) {
	got := RotatePoint(Point{1, 0}, math.Pi/2)
	if !near(got, Point{0, 1}) {
		t.Errorf("期望 (0,1), 得到 %+v", got)
	}
}
