package utils

import (
	"github.com/zooyer/cad2svg/entities"
)

// Attribute 块参照上的一个属性值
type Attribute struct {
	Handle string // 所属 INSERT 的句柄
	Block  string
	Tag    string
	Value  string
}

// GetAttrs 按出现顺序返回属性，同名标签只保留第一个
func GetAttrs(ins *entities.Insert) []Attribute {
	var (
		attrs []Attribute
		seen  = make(map[string]bool)
	)
	for _, a := range ins.Attributes {
		if seen[a.Tag] {
			continue
		}
		seen[a.Tag] = true
		attrs = append(attrs, Attribute{
			Handle: ins.Handle,
			Block:  ins.BlockName,
			Tag:    a.Tag,
			Value:  a.Text,
		})
	}

	return attrs
}

func GetAttr(ins *entities.Insert, key string) string {
	for _, a := range GetAttrs(ins) {
		if a.Tag == key {
			return a.Value
		}
	}
	return ""
}
