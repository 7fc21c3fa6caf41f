package utils

import (
	"maps"
	"slices"

	"github.com/zooyer/cad2svg"
	"github.com/zooyer/cad2svg/entities"
)

type LayerCount struct {
	Layer  string
	Count  int
	Hidden bool // 图层关闭或冻结
}

// Measurement 模型空间中一个标注的显示值
type Measurement struct {
	Handle string
	Block  string
	Value  float64
}

// Summary 图纸概况，只统计模型空间
type Summary struct {
	Version    string
	CodePage   int
	Blocks     int // 不含模型空间
	Kinds      map[string]int
	Layers     []LayerCount // 按首次出现顺序
	Attributes []Attribute
	Dimensions []Measurement
}

// KindNames 实体类型按名称排序
func (s Summary) KindNames() []string {
	return slices.Sorted(maps.Keys(s.Kinds))
}

// Total 模型空间实体总数
func (s Summary) Total() (n int) {
	for _, c := range s.Kinds {
		n += c
	}
	return
}

func Summarize(doc *cad2svg.Document) Summary {
	s := Summary{Kinds: make(map[string]int)}
	if doc == nil {
		return s
	}
	s.Version, s.CodePage = doc.Version, doc.CodePage

	for _, b := range doc.Blocks {
		if !cad2svg.IsModelSpace(b.Name) {
			s.Blocks++
		}
	}

	ms := doc.ModelSpace()
	if ms == nil {
		return s
	}

	index := make(map[string]int)
	for _, ent := range ms.Entities {
		s.Kinds[ent.Type()]++

		layer := ent.Layer()
		i, ok := index[layer]
		if !ok {
			i = len(s.Layers)
			index[layer] = i
			lc := LayerCount{Layer: layer}
			if l := doc.Layer(layer); l != nil {
				lc.Hidden = l.Hidden()
			}
			s.Layers = append(s.Layers, lc)
		}
		s.Layers[i].Count++

		switch e := ent.(type) {
		case *entities.Insert:
			s.Attributes = append(s.Attributes, GetAttrs(e)...)
		case *entities.Dimension:
			s.Dimensions = append(s.Dimensions, Measurement{
				Handle: e.Handle,
				Block:  e.BlockName,
				Value:  GetDimValue(e),
			})
		}
	}

	return s
}
