// Package raster 把转换得到的 SVG 栅格化为 PNG 预览图，只绘制几何，不绘制文字
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// DefaultSize 预览图最长边的默认像素
const DefaultSize = 2048

var ErrEmpty = errors.New("raster: empty drawing")

// Size 按最长边 limit 等比缩放 w×h，每边至少 1 像素；w 或 h 无效时返回 0,0
func Size(w, h float64, limit int) (int, int) {
	if limit <= 0 {
		limit = DefaultSize
	}
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return 0, 0
	}

	scale := float64(limit) / math.Max(w, h)
	pw := int(math.Round(w * scale))
	ph := int(math.Round(h * scale))
	return clamp(pw, limit), clamp(ph, limit)
}

func clamp(v, limit int) int {
	return min(max(v, 1), limit)
}

// Render 解析 SVG 并绘制到白底图像上
func Render(src io.Reader, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(src, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("raster: parse svg: %w", err)
	}

	w, h := Size(icon.ViewBox.W, icon.ViewBox.H, size)
	if w == 0 || h == 0 {
		return nil, ErrEmpty
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.White, image.Point{}, xdraw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return img, nil
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
