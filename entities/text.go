package entities

import (
	"github.com/zooyer/cad2svg/core"
)

// 单行文字水平对齐（组码 72）
const (
	HAlignLeft   = 0
	HAlignCenter = 1
	HAlignRight  = 2
)

type Text struct {
	BaseEntity
	Start  core.Point
	End    *core.Point // 组码 11/21，第二对齐点，可能不存在
	Height float64
	HAlign int
	Value  string
}

// MText 多行文字，Value 中仍带有格式控制码
type MText struct {
	BaseEntity
	Insertion  core.Point
	Height     float64
	Width      float64 // 组码 42 实际宽度，缺失时取 41 参考宽度
	Attachment int
	Value      string
}

func init() {
	Register("TEXT", func() Entity { return &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}} })
	Register("MTEXT", func() Entity { return &MText{BaseEntity: BaseEntity{TypeName: "MTEXT"}, Attachment: 1} })
}

func (e *Text) Parse(s *core.Scanner) error {
	parse(s, &e.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 1:
			e.Value = t.Value
		case 10:
			e.Start.X = t.AsFloat()
		case 20:
			e.Start.Y = t.AsFloat()
		case 11:
			e.end().X = t.AsFloat()
		case 21:
			e.end().Y = t.AsFloat()
		case 40:
			e.Height = t.AsFloat()
		case 72:
			e.HAlign = t.AsInt()
		}
	})
	return nil
}

func (e *Text) end() *core.Point {
	if e.End == nil {
		e.End = &core.Point{}
	}
	return e.End
}

func (e *Text) Accept(v Visitor) { v.VisitText(e) }

func (m *MText) Parse(s *core.Scanner) error {
	var refWidth float64
	var hasWidth bool
	parse(s, &m.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 1, 3:
			// 超过 250 字符的文字拆成若干 3 组码，最后一段为 1 组码
			m.Value += t.Value
		case 10:
			m.Insertion.X = t.AsFloat()
		case 20:
			m.Insertion.Y = t.AsFloat()
		case 40:
			m.Height = t.AsFloat()
		case 41:
			refWidth = t.AsFloat()
		case 42:
			m.Width = t.AsFloat()
			hasWidth = true
		case 71:
			m.Attachment = t.AsInt()
		}
	})
	if !hasWidth {
		m.Width = refWidth
	}
	return nil
}

func (m *MText) Accept(v Visitor) { v.VisitMText(m) }
