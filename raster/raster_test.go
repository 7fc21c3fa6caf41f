package raster

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		w, h  float64
		limit int
		pw    int
		ph    int
	}{
		{100, 50, 200, 200, 100},
		{50, 100, 200, 100, 200},
		{10, 10, 64, 64, 64},
		{1000, 1, 100, 100, 1},
		{100, 50, 0, DefaultSize, DefaultSize / 2},
		{0, 10, 100, 0, 0},
		{10, math.NaN(), 100, 0, 0},
		{math.Inf(1), 10, 100, 0, 0},
	}
	for _, tt := range tests {
		pw, ph := Size(tt.w, tt.h, tt.limit)
		if pw != tt.pw || ph != tt.ph {
			t.Errorf("Size(%v, %v, %d) = %d,%d, 期望 %d,%d", tt.w, tt.h, tt.limit, pw, ph, tt.pw, tt.ph)
		}
	}
}

const square = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 10 10">
<g stroke="#000000" stroke-width="1" fill="none"><path d="M1,1L9,1L9,9L1,9Z"/></g>
</svg>`

func TestRender(t *testing.T) {
	img, err := Render(strings.NewReader(square), 32)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("尺寸不符: %v", b)
	}

	// 背景为白色
	if r, g, b, a := img.At(16, 16).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("中心应为白色背景, 得到 %v %v %v %v", r, g, b, a)
	}

	var buf bytes.Buffer
	if err = WritePNG(&buf, img); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if _, err = png.Decode(&buf); err != nil {
		t.Fatalf("PNG 无法解码: %v", err)
	}
}

func TestRender_Empty(t *testing.T) {
	empty := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`
	if _, err := Render(strings.NewReader(empty), 32); err != ErrEmpty {
		t.Errorf("期望 ErrEmpty, 得到 %v", err)
	}
}
