package cad2svg

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zooyer/cad2svg/codepage"
	"github.com/zooyer/cad2svg/entities"
)

func dxfText(pairs ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, "%v\n%v\n", pairs[i], pairs[i+1])
	}
	return b.String()
}

var sampleDXF = dxfText(
	0, "SECTION", 2, "HEADER",
	9, "$ACADVER", 1, "AC1015",
	9, "$DWGCODEPAGE", 3, "ANSI_1252",
	0, "ENDSEC",
	0, "SECTION", 2, "TABLES",
	0, "TABLE", 2, "LAYER", 70, 2,
	0, "LAYER", 2, "0", 70, 0, 62, 7, 6, "CONTINUOUS",
	0, "LAYER", 2, "L1", 70, 0, 62, -1, 6, "CONTINUOUS",
	0, "ENDTAB",
	0, "ENDSEC",
	0, "SECTION", 2, "BLOCKS",
	0, "BLOCK", 8, "0", 2, "*Model_Space", 70, 0, 10, 0, 20, 0,
	0, "ENDBLK", 8, "0",
	0, "BLOCK", 8, "0", 2, "B1", 70, 0, 10, 0, 20, 0,
	0, "CIRCLE", 8, "0", 10, 0, 20, 0, 40, 5,
	0, "ENDBLK", 8, "0",
	0, "ENDSEC",
	0, "SECTION", 2, "ENTITIES",
	0, "LINE", 5, "A1", 8, "L1", 62, 1, 10, 0, 20, 0, 11, 10, 21, 10,
	0, "INSERT", 5, "A2", 8, "0", 2, "B1", 10, 100, 20, 100, 41, 2, 42, 2,
	0, "TEXT", 5, "A3", 8, "0", 67, 1, 10, 0, 20, 0, 40, 2, 1, "caf\xe9",
	0, "UNKNOWN", 8, "0",
	0, "ENDSEC",
	0, "EOF",
)

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}

	if doc.Version != "AC1015" || doc.CodePage != codepage.ANSI1252 {
		t.Errorf("头部不符: version=%s codepage=%d", doc.Version, doc.CodePage)
	}

	if len(doc.Layers) != 2 {
		t.Fatalf("期望 2 个图层, 得到 %d", len(doc.Layers))
	}
	l1 := doc.Layer("L1")
	if l1 == nil || !l1.Off || !l1.Hidden() || *l1.Color.Index != 1 {
		t.Errorf("图层 L1 不符: %+v", l1)
	}
	if c, ok := doc.LayerColor("0"); !ok || *c.Index != 7 {
		t.Errorf("图层 0 颜色不符: %+v", c)
	}
	if _, ok := doc.LayerColor("missing"); ok {
		t.Errorf("不存在的图层不应有颜色")
	}

	if len(doc.Entities) != 3 {
		t.Fatalf("期望 3 个实体, 得到 %d", len(doc.Entities))
	}

	// 块表：模型空间、B1、追加的图纸空间
	if len(doc.Blocks) != 3 {
		t.Fatalf("期望 3 个块, 得到 %d", len(doc.Blocks))
	}
	ms := doc.ModelSpace()
	if ms == nil || len(ms.Entities) != 2 {
		t.Fatalf("模型空间不符: %+v", ms)
	}
	b1 := doc.Block("b1")
	if b1 == nil || len(b1.Entities) != 1 || b1.Entities[0].Type() != "CIRCLE" {
		t.Fatalf("块 B1 不符: %+v", b1)
	}
	ps := doc.Blocks[2]
	if ps.Name != PaperSpaceName || len(ps.Entities) != 1 {
		t.Fatalf("图纸空间不符: %+v", ps)
	}

	// AC1021 之前的字符串按代码页解码
	text := ps.Entities[0].(*entities.Text)
	if text.Value != "café" {
		t.Errorf("期望 café, 得到 %q", text.Value)
	}
}

func TestLoad_NoModelSpaceBlock(t *testing.T) {
	src := dxfText(
		0, "SECTION", 2, "ENTITIES",
		0, "LINE", 8, "0", 10, 0, 20, 0, 11, 1, 21, 1,
		0, "ENDSEC",
		0, "EOF",
	)
	doc, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	ms := doc.ModelSpace()
	if ms == nil || ms.Name != ModelSpaceName || len(ms.Entities) != 1 {
		t.Fatalf("期望自动创建模型空间: %+v", doc.Blocks)
	}
}

func TestLoad_Malformed(t *testing.T) {
	src := "0\nSECTION\n2\nENTITIES\nabc\nLINE\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatalf("期望非法组码返回错误")
	}
}

// loadWithin 在限定时间内加载，超时视为死循环
func loadWithin(t *testing.T, src string) *Document {
	t.Helper()
	type result struct {
		doc *Document
		err error
	}
	done := make(chan result, 1)
	go func() {
		doc, err := Load(strings.NewReader(src))
		done <- result{doc, err}
	}()
	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("加载失败: %v", r.err)
		}
		return r.doc
	case <-time.After(2 * time.Second):
		t.Fatalf("加载未在 2s 内返回")
		return nil
	}
}

func TestLoad_Truncated(t *testing.T) {
	doc := loadWithin(t, "0\nSECTION\n2\nENTITIES\n0\nLINE\n")
	if len(doc.Entities) != 1 || doc.Entities[0].Type() != "LINE" {
		t.Errorf("期望 1 个 LINE, 得到 %d 个实体", len(doc.Entities))
	}

	doc = loadWithin(t, "0\nSECTION\n2\nBLOCKS\n0\nBLOCK\n2\nB\n0\nCIRCLE\n")
	if b := doc.Block("B"); b == nil || len(b.Entities) != 1 {
		t.Errorf("块 B 不符: %+v", b)
	}

	for _, src := range []string{
		"0\nSECTION\n2\nBLOCKS\n0\nBLOCK\n",
		"0\nSECTION\n2\nTABLES\n0\nTABLE\n2\nLAYER\n0\nLAYER\n",
		"0\nSECTION\n2\nENTITIES\n0\nPOLYLINE\n66\n1\n0\nVERTEX\n",
		"0\nSECTION\n2\nENTITIES\n0\nINSERT\n66\n1\n0\nATTRIB\n",
		"0\nSECTION\n",
	} {
		loadWithin(t, src)
	}
}

func TestIsModelSpace(t *testing.T) {
	for _, name := range []string{"*Model_Space", "*MODEL_SPACE", "$MODEL_SPACE"} {
		if !IsModelSpace(name) {
			t.Errorf("%s 应为模型空间", name)
		}
	}
	if IsModelSpace("*Paper_Space") {
		t.Errorf("*Paper_Space 不是模型空间")
	}
}

func TestSetLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatalf("默认日志不应为 nil")
	}
	SetLogger(nil)
	if Logger().Enabled(t.Context(), 8) {
		t.Errorf("默认日志应为静默")
	}
}
