package colors

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ACI 特殊索引
const (
	ByBlock = 0
	White   = 7 // 黑/白自动反转
	ByLayer = 256
)

// palette AutoCAD Color Index 调色板，索引 1..255
var palette [256]string

func init() {
	base := []string{
		1: "#ff0000", 2: "#ffff00", 3: "#00ff00", 4: "#00ffff",
		5: "#0000ff", 6: "#ff00ff", 7: "#ffffff", 8: "#808080", 9: "#c0c0c0",
	}
	copy(palette[:], base)

	// 10..249: 24 个色相 × 5 个明度 × 2 个饱和度
	values := [...]float64{1, 0.65, 0.5, 0.3, 0.15}
	for i := 10; i < 250; i++ {
		hue := float64((i-10)/10) * 15
		row := (i - 10) % 10
		sat := 1.0
		if row%2 == 1 {
			sat = 0.5
		}
		palette[i] = colorful.Hsv(hue, sat, values[row/2]).Hex()
	}

	// 250..255: 灰度
	for i, g := range [...]int{51, 80, 105, 130, 190, 255} {
		palette[250+i] = fmt.Sprintf("#%02x%02x%02x", g, g, g)
	}
}

// Palette 返回 ACI 索引对应的 CSS 颜色，超出 1..255 返回 false
func Palette(index int) (string, bool) {
	if index < 1 || index > 255 {
		return "", false
	}
	return palette[index], true
}
