package entities

import "github.com/zooyer/cad2svg/core"

// Attrib 块参照的属性值，只随 INSERT 读取，不产生几何
type Attrib struct {
	BaseEntity
	Tag  string // 属性标签，如 "序号"
	Text string // 属性值
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{BaseEntity: BaseEntity{TypeName: "ATTRIB"}}
	})
}

func (a *Attrib) Parse(scanner *core.Scanner) error {
	parse(scanner, &a.BaseEntity, func(tag core.Tag) {
		switch tag.Code {
		case 1:
			a.Text = tag.AsString()
		case 2:
			a.Tag = tag.AsString()
		}
	})
	return nil
}

func (a *Attrib) Accept(v Visitor) { v.VisitAttrib(a) }
