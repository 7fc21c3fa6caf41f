package markup

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const replacement = '\uFFFD'

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
)

// Sanitize 清洗要写入文本节点的字符串：先过滤码元，再转义 & < >
func Sanitize(s string) string {
	return EscapeText(filter(s))
}

// filter 按 UTF-16 码元扫描，不成对的代理项和 XML 不允许的字符替换为 U+FFFD
func filter(s string) string {
	units := codeUnits(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case utf16.IsSurrogate(rune(u)):
			if u < 0xDC00 && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
				b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
				i++
			} else {
				b.WriteRune(replacement)
			}
		case allowed(u):
			b.WriteRune(rune(u))
		default:
			b.WriteRune(replacement)
		}
	}
	return b.String()
}

// EscapeText 转义文本节点，& 必须最先处理
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr 转义属性值，码元过滤与 Sanitize 相同
func EscapeAttr(s string) string {
	return attrEscaper.Replace(filter(s))
}

func allowed(u uint16) bool {
	return u == 0x9 || u == 0xA || u == 0xD ||
		(u >= 0x20 && u <= 0xD7FF) ||
		(u >= 0xE000 && u <= 0xFFFD)
}

// codeUnits 把字符串拆成 UTF-16 码元。
// 以三字节形式编码的代理项（CESU-8/WTF-8）保留为单独的码元，其余非法字节记为 U+FFFD。
func codeUnits(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if u, ok := surrogateAt(s[i:]); ok {
				units = append(units, u)
				i += 3
				continue
			}
			units = append(units, replacement)
			i++
			continue
		}
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units
}

func surrogateAt(s string) (uint16, bool) {
	if len(s) < 3 || s[0] != 0xED || s[1] < 0xA0 || s[1] > 0xBF || s[2]&0xC0 != 0x80 {
		return 0, false
	}
	return 0xD000 | uint16(s[1]&0x3F)<<6 | uint16(s[2]&0x3F), true
}
