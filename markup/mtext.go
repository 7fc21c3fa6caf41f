package markup

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var mtextRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\\P`), "\n"},
	{regexp.MustCompile(`\\[LOlo]`), ""},
	{regexp.MustCompile(`\\[Ff][^;\\]*?(?:\|[^;\\]*)*;`), ""},
	{regexp.MustCompile(`\\[KkCcHhWwTtAa][^;\\]*;?`), ""},
	{regexp.MustCompile(`\\[a-zA-Z]+;?`), ""},
	// %%d %%p %%c 直接丢弃，不替换成 ° ± ⌀
	{regexp.MustCompile(`(?i)%%(d|p|c|%)`), ""},
	{regexp.MustCompile(`\\\\`), `\`},
	{regexp.MustCompile(`\\~`), "\u00a0"},
	{regexp.MustCompile(`[{}]`), ""},
}

var unicodeEscape = regexp.MustCompile(`\\U\+([0-9A-Fa-f]{4})`)

// MTextLines 去掉 MTEXT 的格式控制码，按段落拆分为去除首尾空白的非空行
func MTextLines(text string) []string {
	text = unescapeUnicode(text)
	for _, rule := range mtextRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// unescapeUnicode 展开 \U+XXXX，相邻的高低代理项合并为一个字符
func unescapeUnicode(text string) string {
	matches := unicodeEscape.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var (
		b    strings.Builder
		last int
	)
	for i := 0; i < len(matches); i++ {
		m := matches[i]
		b.WriteString(text[last:m[0]])
		last = m[1]

		u := hexUnit(text[m[2]:m[3]])
		if utf16.IsSurrogate(u) {
			if u < 0xDC00 && i+1 < len(matches) && matches[i+1][0] == m[1] {
				next := matches[i+1]
				if r := utf16.DecodeRune(u, hexUnit(text[next[2]:next[3]])); r != replacement {
					b.WriteRune(r)
					last = next[1]
					i++
					continue
				}
			}
			b.WriteRune(replacement)
			continue
		}
		b.WriteRune(u)
	}
	b.WriteString(text[last:])
	return b.String()
}

func hexUnit(s string) rune {
	v, _ := strconv.ParseUint(s, 16, 16)
	return rune(v)
}
