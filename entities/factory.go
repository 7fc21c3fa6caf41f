package entities

import (
	"github.com/zooyer/cad2svg/colors"
	"github.com/zooyer/cad2svg/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(scanner *core.Scanner) error
	Type() string
	Layer() string
	Base() *BaseEntity
	Accept(v Visitor)
}

// Visitor 每种实体一个方法，新增实体类型时所有访问者都必须实现对应方法
type Visitor interface {
	VisitLine(*Line)
	VisitRay(*Ray)
	VisitXLine(*XLine)
	VisitCircle(*Circle)
	VisitArc(*Arc)
	VisitEllipse(*Ellipse)
	VisitLWPolyline(*LWPolyline)
	VisitPolyline(*Polyline)
	VisitSpline(*Spline)
	VisitText(*Text)
	VisitMText(*MText)
	VisitTable(*Table)
	VisitInsert(*Insert)
	VisitDimension(*Dimension)
	VisitAttrib(*Attrib)
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName   string
	LayerName  string
	Handle     string
	Color      colors.Color
	Extrusion  *core.Vector // 组码 210/220/230，缺省为 (0,0,1)
	PaperSpace bool         // 组码 67
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Base() *BaseEntity { return b }

// Mirrored 拉伸方向为 (0,0,-1) 时实体在 XY 平面上是镜像的
func (b *BaseEntity) Mirrored() bool {
	return b.Extrusion != nil && b.Extrusion.Z == -1
}

// parseCommon 处理公共组码，返回是否已处理
func (b *BaseEntity) parseCommon(t core.Tag) bool {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 8:
		b.LayerName = t.AsString()
	case 62:
		index := t.AsInt()
		b.Color.Index = &index
	case 420:
		rgb := t.AsInt() & 0xffffff
		b.Color.True = &rgb
	case 430:
		b.Color.Name = t.AsString()
	case 67:
		b.PaperSpace = t.AsBool()
	case 210:
		b.extrusion().X = t.AsFloat()
	case 220:
		b.extrusion().Y = t.AsFloat()
	case 230:
		b.extrusion().Z = t.AsFloat()
	default:
		return false
	}
	return true
}

func (b *BaseEntity) extrusion() *core.Vector {
	if b.Extrusion == nil {
		b.Extrusion = &core.Vector{Z: 1}
	}
	return b.Extrusion
}

// finish 没有任何颜色组码的实体随层
func (b *BaseEntity) finish() {
	if b.Color.IsZero() {
		index := colors.ByLayer
		b.Color.Index = &index
	}
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}

// parse 通用的组码循环：进入时 LastTag 为实体的 0 组码，返回时停在下一个 0 组码上
func parse(s *core.Scanner, base *BaseEntity, fn func(t core.Tag)) {
	for {
		t := s.LastTag
		if !base.parseCommon(t) {
			fn(t)
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	base.finish()
}

// skip 跳过当前对象剩余的组码，停在下一个 0 组码上
func skip(s *core.Scanner) {
	for s.Next() {
		if s.LastTag.Code == 0 {
			return
		}
	}
}

// parseSequence 读取 member 类型的从属实体直到 SEQEND，进入时 LastTag 为第一个从属实体的 0 组码。
// 遇到其他实体说明缺少 SEQEND，停在该实体上交给外层处理
func parseSequence(s *core.Scanner, member string, fn func(ent Entity)) error {
	for s.LastTag.Code == 0 {
		switch s.LastTag.Value {
		case "SEQEND":
			skip(s)
			return s.Err()
		case member:
		default:
			return s.Err()
		}
		ent := CreateEntity(member)
		if err := ent.Parse(s); err != nil {
			return err
		}
		fn(ent)
		if s.Err() != nil {
			break
		}
	}
	return s.Err()
}
