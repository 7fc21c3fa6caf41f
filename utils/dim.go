package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/cad2svg/entities"
	"github.com/zooyer/cad2svg/markup"
)

var number = regexp.MustCompile(`-?[0-9]*\.?[0-9]+`)

// GetDimValue 标注的显示值：有手动文字覆盖（不含 "<>"）时从文字中提取数字，否则取实测值
func GetDimValue(dim *entities.Dimension) float64 {
	if dim.Text == "" || strings.Contains(dim.Text, "<>") {
		return dim.ActualMeasurement
	}

	text := strings.Join(markup.MTextLines(dim.Text), " ")
	if match := number.FindString(text); match != "" {
		if v, err := strconv.ParseFloat(match, 64); err == nil {
			return v
		}
	}
	return dim.ActualMeasurement
}
