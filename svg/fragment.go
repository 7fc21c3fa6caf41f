package svg

import (
	"github.com/zooyer/cad2svg/core"
	"github.com/zooyer/cad2svg/markup"
)

// Fragment 一个实体或块的转换结果，nil 表示没有可见几何
type Fragment struct {
	BBox   core.BBox
	Markup markup.Markup
}

// Mirror 拉伸方向 Z=-1 时水平翻转
func (f *Fragment) Mirror() *Fragment {
	return &Fragment{
		BBox:   f.BBox.Mirror(),
		Markup: markup.Element("g").Attr("transform", markup.Transform(nil).Matrix(-1, 0, 0, 1, 0, 0)).Append(f.Markup).Markup(),
	}
}

// layerBuckets 按首次出现顺序分组的图层片段
type layerBuckets struct {
	order []string
	items map[string][]markup.Markup
}

type layered struct {
	layer  string
	markup markup.Markup
}

// noLayer 没有图层名的实体归入该组
const noLayer = "__NO_LAYER__"

func groupByLayer(list []layered) layerBuckets {
	buckets := layerBuckets{items: make(map[string][]markup.Markup)}
	for _, l := range list {
		name := l.layer
		if name == "" {
			name = noLayer
		}
		if _, ok := buckets.items[name]; !ok {
			buckets.order = append(buckets.order, name)
		}
		buckets.items[name] = append(buckets.items[name], l.markup)
	}
	return buckets
}

// LayerID 图层组的 id，非 [A-Za-z0-9-_:.] 字符替换为 _
func LayerID(name string) string {
	b := make([]byte, 0, len(name)+6)
	b = append(b, "layer-"...)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == ':', r == '.':
			b = append(b, byte(r))
		case r > 0xFFFF:
			// 代理对按两个码元计
			b = append(b, '_', '_')
		default:
			b = append(b, '_')
		}
	}
	return string(b)
}
