package utils

import (
	"github.com/zooyer/cad2svg"
	"github.com/zooyer/cad2svg/entities"
)

// Reference 一个无法解析的块参照
type Reference struct {
	Block   string // 参照所在的块
	Handle  string
	Kind    string // INSERT 或 DIMENSION
	Name    string // 被参照的块名
	Missing bool   // 块表中根本没有该块
}

func refName(ent entities.Entity) (string, bool) {
	switch e := ent.(type) {
	case *entities.Insert:
		return e.BlockName, true
	case *entities.Dimension:
		return e.BlockName, true
	}
	return "", false
}

// ForwardReferences 按转换顺序（先所有块定义，最后模型空间）找出引用了尚未转换的块的参照。
// 这些参照在 SVG 中不产生任何几何。
func ForwardReferences(doc *cad2svg.Document) (refs []Reference) {
	if doc == nil {
		return
	}

	var (
		defined  = make(map[string]bool)
		existing = make(map[string]bool)
		model    *cad2svg.Block
	)
	for _, b := range doc.Blocks {
		existing[b.Name] = true
	}

	check := func(block *cad2svg.Block) {
		for _, ent := range block.Entities {
			name, ok := refName(ent)
			if !ok || defined[name] {
				continue
			}
			refs = append(refs, Reference{
				Block:   block.Name,
				Handle:  ent.Base().Handle,
				Kind:    ent.Type(),
				Name:    name,
				Missing: !existing[name],
			})
		}
	}

	for _, b := range doc.Blocks {
		if cad2svg.IsModelSpace(b.Name) {
			model = b
			continue
		}
		check(b)
		defined[b.Name] = true
	}
	if model != nil {
		check(model)
	}

	return
}
