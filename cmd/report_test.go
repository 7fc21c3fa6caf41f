package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zooyer/cad2svg"
	"github.com/zooyer/cad2svg/utils"
)

func loadSample(t *testing.T) utils.Summary {
	t.Helper()
	doc, err := cad2svg.Open(filepath.Join("testdata", "sample.dxf"))
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	return utils.Summarize(doc)
}

func TestWriteCSV(t *testing.T) {
	s := loadSample(t)
	filename := filepath.Join(t.TempDir(), "layers.csv")

	for i := 0; i < 2; i++ {
		if err := writeCSV(filename, "sample.dxf", s); err != nil {
			t.Fatalf("写入失败: %v", err)
		}
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// 表头只写一次
	if want := 1 + 2*len(s.Layers); len(records) != want {
		t.Fatalf("期望 %d 行, 得到 %d", want, len(records))
	}
	if strings.Join(records[0], ",") != "图纸,图层,实体数,隐藏" {
		t.Errorf("表头不符: %v", records[0])
	}
	if records[1][0] != "sample.dxf" || records[1][1] != "墙体" || records[1][2] != "1" || records[1][3] != "否" {
		t.Errorf("首行不符: %v", records[1])
	}
}

func TestRenderSummary(t *testing.T) {
	s := loadSample(t)
	out := renderSummary("testdata/sample.dxf", "sample.svg", s)

	for _, want := range []string{"sample.dxf", "AC1027", "墙体", "LWPOLYLINE", "sample.svg"} {
		if !strings.Contains(out, want) {
			t.Errorf("期望包含 %q, 得到 %s", want, out)
		}
	}
}

func TestSVGName(t *testing.T) {
	if got := svgName("a/b/plan.dxf"); got != "a/b/plan.svg" {
		t.Errorf("期望 %v, 得到 %v", "a/b/plan.svg", got)
	}
}
