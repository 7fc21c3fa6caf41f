package colors

import (
	"fmt"
	"strings"
)

// Black 缺省颜色，白色在白底上等于不可见
const Black = "#000000"

// Color 实体或图层上的原始颜色字段，均为可选
type Color struct {
	True  *int   // 组码 420，0xRRGGBB
	Index *int   // 组码 62，ACI
	Name  string // 组码 430
	RGB   *int   // 直接给出的 RGB
}

// Resolved 颜色解析结果
type Resolved struct {
	CSS     string
	ByBlock bool // 随块：调用方需要继承外层颜色
	ByLayer bool // 随层：颜色来自图层
}

// Layers 按图层名查询图层颜色
type Layers interface {
	LayerColor(name string) (Color, bool)
}

// IndexOf 构造 ACI 颜色
func IndexOf(index int) Color {
	return Color{Index: &index}
}

// TrueOf 构造真彩色
func TrueOf(rgb int) Color {
	return Color{True: &rgb}
}

// IsZero 没有任何颜色信息
func (c Color) IsZero() bool {
	return c.True == nil && c.Index == nil && c.Name == "" && c.RGB == nil
}

// Resolve 解析实体颜色。
// 优先级：真彩色 > 颜色索引 > 颜色名 > RGB；随层时依次取图层的真彩色、RGB、索引；
// 7 号色固定为黑色；没有任何颜色信息时为黑色。
func Resolve(c Color, layer string, layers Layers) Resolved {
	var (
		rgb   *int
		index *int
		name  string
	)

	switch {
	case c.True != nil:
		rgb = c.True
	case c.Index != nil:
		index = c.Index
	case c.Name != "":
		name = c.Name
	case c.RGB != nil:
		rgb = c.RGB
	}

	byLayer := index != nil && *index == ByLayer
	if byLayer && layers != nil {
		if lc, ok := layers.LayerColor(layer); ok {
			switch {
			case lc.True != nil:
				rgb, index = lc.True, nil
			case lc.RGB != nil:
				rgb, index = lc.RGB, nil
			case lc.Index != nil:
				index = lc.Index
			}
		}
	}

	if index != nil && *index == White {
		black := 0
		rgb, index = &black, nil
	}

	if rgb == nil && index == nil && name == "" {
		black := 0
		rgb = &black
	}

	return Resolved{
		CSS:     css(rgb, index, name),
		ByBlock: index != nil && *index == ByBlock,
		ByLayer: byLayer,
	}
}

func css(rgb, index *int, name string) string {
	switch {
	case rgb != nil:
		return fmt.Sprintf("#%06x", *rgb&0xffffff)
	case index != nil:
		if s, ok := Palette(*index); ok {
			return s
		}
		// 随块由外层继承，找不到图层的随层颜色按黑色处理
		return Black
	default:
		if s, ok := named[strings.ToLower(strings.TrimSpace(name))]; ok {
			return s
		}
		return Black
	}
}

// named CSS 基本颜色关键字
var named = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
}
