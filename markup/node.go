package markup

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Markup 已转义的标记片段。
// 只通过 Node、Path 和 Sanitize 产生，文本进入片段前一定经过清洗。
type Markup string

type attr struct {
	name, value string
}

// Node 一个待输出的元素
type Node struct {
	name     string
	attrs    []attr
	children []Markup
}

func Element(name string) *Node {
	return &Node{name: name}
}

// Attr 追加属性，值在输出时统一转义；float64 按最短形式格式化
func (n *Node) Attr(name string, value any) *Node {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case float64:
		s = Num(v)
	case int:
		s = strconv.Itoa(v)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	n.attrs = append(n.attrs, attr{name: name, value: s})
	return n
}

// Text 追加文本子节点
func (n *Node) Text(s string) *Node {
	n.children = append(n.children, Markup(Sanitize(s)))
	return n
}

// Append 追加子片段，多个子片段之间以换行分隔
func (n *Node) Append(children ...Markup) *Node {
	n.children = append(n.children, children...)
	return n
}

func (n *Node) Markup() Markup {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(EscapeAttr(a.value))
		b.WriteByte('"')
	}
	if len(n.children) == 0 {
		b.WriteString("/>")
		return Markup(b.String())
	}
	b.WriteByte('>')
	b.WriteString(string(Join(n.children, "\n")))
	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
	return Markup(b.String())
}

func (n *Node) String() string {
	return string(n.Markup())
}

// Join 拼接片段
func Join(parts []Markup, sep string) Markup {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(p))
	}
	return Markup(b.String())
}

// Num 格式化坐标，NaN/Inf 记为 0，-0 记为 0
func Num(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Transform SVG transform 属性
type Transform []string

func Translate(x, y float64) Transform {
	return Transform(nil).Translate(x, y)
}

func (t Transform) Translate(x, y float64) Transform {
	return append(t, "translate("+Num(x)+","+Num(y)+")")
}

// Rotate 角度制；给出 cx, cy 时绕该点旋转
func (t Transform) Rotate(deg float64, center ...float64) Transform {
	if len(center) == 2 {
		return append(t, "rotate("+Num(deg)+" "+Num(center[0])+" "+Num(center[1])+")")
	}
	return append(t, "rotate("+Num(deg)+")")
}

func (t Transform) Scale(x, y float64) Transform {
	return append(t, "scale("+Num(x)+","+Num(y)+")")
}

func (t Transform) Matrix(a, b, c, d, e, f float64) Transform {
	return append(t, "matrix("+strings.Join([]string{Num(a), Num(b), Num(c), Num(d), Num(e), Num(f)}, ",")+")")
}

func (t Transform) String() string {
	return strings.Join(t, " ")
}
