package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/cad2svg/codepage"
	"github.com/zooyer/cad2svg/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A1A1AA"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717A"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)
)

var csvHeader = []string{"图纸", "图层", "实体数", "隐藏"}

func renderSummary(input, output string, s utils.Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(filepath.Base(input)) + "\n")
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		labelStyle.Render("版本"), s.Version,
		labelStyle.Render("代码页"), codepage.Name(s.CodePage),
	)
	fmt.Fprintf(&b, "%s %d  %s %d\n",
		labelStyle.Render("实体"), s.Total(),
		labelStyle.Render("块"), s.Blocks,
	)

	for _, kind := range s.KindNames() {
		fmt.Fprintf(&b, "  %-12s %d\n", kind, s.Kinds[kind])
	}
	for _, l := range s.Layers {
		var hidden string
		if l.Hidden {
			hidden = dimStyle.Render(" (隐藏)")
		}
		fmt.Fprintf(&b, "  %s %s %d%s\n", dimStyle.Render("图层"), l.Layer, l.Count, hidden)
	}
	for _, m := range s.Dimensions {
		fmt.Fprintf(&b, "  %s %s %g\n", dimStyle.Render("标注"), m.Handle, m.Value)
	}
	for _, a := range s.Attributes {
		fmt.Fprintf(&b, "  %s %s=%s\n", dimStyle.Render("属性"), a.Tag, a.Value)
	}

	b.WriteString(dimStyle.Render("→ " + output))

	return boxStyle.Render(b.String())
}

// writeCSV 追加每个图层的实体数, 文件不存在时先写表头
func writeCSV(filename, input string, s utils.Summary) error {
	var (
		buf bytes.Buffer
		w   = csv.NewWriter(&buf)
	)

	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		if err = w.Write(csvHeader); err != nil {
			return err
		}
	}

	name := filepath.Base(input)
	for _, l := range s.Layers {
		if err := w.Write([]string{name, l.Layer, strconv.Itoa(l.Count), yesNo(l.Hidden)}); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return xos.AppendFile(filename, buf.Bytes(), 0644)
}

func yesNo(b bool) string {
	if b {
		return "是"
	}
	return "否"
}
