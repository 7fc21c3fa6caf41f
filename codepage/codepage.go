package codepage

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// 常用代码页编号
const (
	UTF8      = 0
	ANSI1252  = 30
	GB2312    = 31
	ANSI936   = 39
	UTF16     = 43
	Undefined = 255
)

type page struct {
	id       int
	dxf      string // $DWGCODEPAGE 中的名称
	encoding string // WHATWG 编码标签
}

// 没有对应解码器的代码页按 utf-8 处理
var pages = []page{
	{0, "UTF8", "utf-8"},
	{1, "US_ASCII", "utf-8"},
	{2, "ISO_8859_1", "iso-8859-1"},
	{3, "ISO_8859_2", "iso-8859-2"},
	{4, "ISO_8859_3", "iso-8859-3"},
	{5, "ISO_8859_4", "iso-8859-4"},
	{6, "ISO_8859_5", "iso-8859-5"},
	{7, "ISO_8859_6", "iso-8859-6"},
	{8, "ISO_8859_7", "iso-8859-7"},
	{9, "ISO_8859_8", "iso-8859-8"},
	{10, "ISO_8859_9", "iso-8859-9"},
	{11, "DOS437", "utf-8"},
	{12, "DOS850", "utf-8"},
	{13, "DOS852", "utf-8"},
	{14, "DOS855", "utf-8"},
	{15, "DOS857", "utf-8"},
	{16, "DOS860", "utf-8"},
	{17, "DOS861", "utf-8"},
	{18, "DOS863", "utf-8"},
	{19, "DOS864", "utf-8"},
	{20, "DOS865", "utf-8"},
	{21, "DOS869", "utf-8"},
	{22, "DOS932", "shift_jis"},
	{23, "MACINTOSH", "macintosh"},
	{24, "BIG5", "big5"},
	{25, "KSC5601", "utf-8"},
	{26, "JOHAB", "utf-8"},
	{27, "DOS866", "ibm866"},
	{28, "ANSI_1250", "windows-1250"},
	{29, "ANSI_1251", "windows-1251"},
	{30, "ANSI_1252", "windows-1252"},
	{31, "GB2312", "gbk"},
	{32, "ANSI_1253", "windows-1253"},
	{33, "ANSI_1254", "windows-1254"},
	{34, "ANSI_1255", "windows-1255"},
	{35, "ANSI_1256", "windows-1256"},
	{36, "ANSI_1257", "windows-1257"},
	{37, "ANSI_874", "windows-874"},
	{38, "ANSI_932", "shift_jis"},
	{39, "ANSI_936", "gbk"},
	{40, "ANSI_949", "euc-kr"},
	{41, "ANSI_950", "big5"},
	{42, "ANSI_1361", "utf-8"},
	{43, "UTF16", "utf-16le"},
	{44, "ANSI_1258", "windows-1258"},
}

func find(id int) (page, bool) {
	if id >= 0 && id < len(pages) {
		return pages[id], true
	}
	return page{}, false
}

// Name 代码页编号对应的编码名，未知编号返回空串
func Name(id int) string {
	p, ok := find(id)
	if !ok {
		return ""
	}
	return p.encoding
}

// Lookup 代码页编号对应的编码；255（R11 常见）与 utf-8 返回 UTF-8
func Lookup(id int) (encoding.Encoding, error) {
	if id == Undefined {
		return unicode.UTF8, nil
	}
	name := Name(id)
	if name == "" {
		return nil, fmt.Errorf("codepage: unknown code page %d", id)
	}
	if name == "utf-8" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("codepage: %s: %w", name, err)
	}
	return enc, nil
}

// Decode 按代码页解码字节串
func Decode(b []byte, id int) (string, error) {
	enc, err := Lookup(id)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("codepage: decode: %w", err)
	}
	return string(out), nil
}

// FromDXF 把 $DWGCODEPAGE 的值（如 "ANSI_1252"、"dos437"）转换为代码页编号
func FromDXF(name string) (int, bool) {
	key := normalize(name)
	if key == "" {
		return 0, false
	}
	for _, p := range pages {
		if normalize(p.dxf) == key {
			return p.id, true
		}
	}
	return 0, false
}

func normalize(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}
