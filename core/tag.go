package core

import (
	"strconv"
	"strings"
)

// NoCode 读取结束或出错后 Scanner.LastTag 的组码，不会与任何真实组码相同
const NoCode = -1

// Tag 代表 DXF 中的一组标签对：Code 行与其后的 Value 行。
// 实体解析以 Code 0 的标签为边界，Value 保留行首空格，取值时再按需清洗。
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// AsBool 非 0 即为 true
func (t Tag) AsBool() bool {
	return t.AsInt() != 0
}
