package entities

import "github.com/zooyer/cad2svg/core"

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 弧度
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1}, // 默认缩放为 1
		}
	})
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	hasAttributes := false

	parse(scanner, &i.BaseEntity, func(tag core.Tag) {
		switch tag.Code {
		case 2:
			i.BlockName = tag.AsString()
		case 10:
			i.InsertionPoint.X = tag.AsFloat()
		case 20:
			i.InsertionPoint.Y = tag.AsFloat()
		case 41:
			i.Scale.X = tag.AsFloat()
		case 42:
			i.Scale.Y = tag.AsFloat()
		case 50:
			i.Rotation = radians(tag.AsFloat())
		case 66:
			hasAttributes = tag.AsBool()
		}
	})

	// 标记了有属性时，继续在当前流中抓取 ATTRIB 直到 SEQEND
	if !hasAttributes || scanner.LastTag.Code != 0 {
		return scanner.Err()
	}
	return parseSequence(scanner, "ATTRIB", func(ent Entity) {
		if attr, ok := ent.(*Attrib); ok {
			i.Attributes = append(i.Attributes, attr)
		}
	})
}

func (i *Insert) Accept(v Visitor) { v.VisitInsert(i) }
