package cad2svg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/cad2svg/codepage"
	"github.com/zooyer/cad2svg/colors"
	"github.com/zooyer/cad2svg/core"
	"github.com/zooyer/cad2svg/entities"
)

const (
	ModelSpaceName = "*Model_Space"
	PaperSpaceName = "*Paper_Space"
)

// unicodeVersion AC1021（2007）起 DXF 以 UTF-8 存储字符串
const unicodeVersion = "AC1021"

type Layer struct {
	Name  string
	Color colors.Color
	Flags int  // 组码 70，bit 1 冻结
	Off   bool // 颜色号为负表示关闭
}

// Hidden 图层关闭或冻结
func (l *Layer) Hidden() bool {
	return l.Off || l.Flags&1 != 0
}

type Block struct {
	Name     string
	Base     core.Point // 块基点，参照时与插入点重合
	Entities []entities.Entity
}

type Document struct {
	Version  string
	CodePage int
	Blocks   []*Block // 按文件中出现的顺序
	Layers   []*Layer
	Entities []entities.Entity // ENTITIES 段中的全部实体
}

// IsModelSpace 模型空间块名，R12 为 $MODEL_SPACE
func IsModelSpace(name string) bool {
	return strings.EqualFold(name, ModelSpaceName) || strings.EqualFold(name, "$MODEL_SPACE")
}

func isPaperSpace(name string) bool {
	return strings.EqualFold(name, PaperSpaceName) || strings.EqualFold(name, "$PAPER_SPACE")
}

// Block 按名称查找块，名称完全匹配优先
func (d *Document) Block(name string) *Block {
	var fold *Block
	for _, b := range d.Blocks {
		if b.Name == name {
			return b
		}
		if fold == nil && strings.EqualFold(b.Name, name) {
			fold = b
		}
	}
	return fold
}

func (d *Document) ModelSpace() *Block {
	for _, b := range d.Blocks {
		if IsModelSpace(b.Name) {
			return b
		}
	}
	return nil
}

func (d *Document) paperSpace() *Block {
	for _, b := range d.Blocks {
		if isPaperSpace(b.Name) {
			return b
		}
	}
	return nil
}

func (d *Document) Layer(name string) *Layer {
	for _, l := range d.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// LayerColor 实现 colors.Layers
func (d *Document) LayerColor(name string) (colors.Color, bool) {
	if l := d.Layer(name); l != nil {
		return l.Color, true
	}
	return colors.Color{}, false
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	var variable string
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		switch {
		case tag.Code == 9:
			variable = strings.ToUpper(tag.AsString())
		case variable == "$ACADVER" && tag.Code == 1:
			d.Version = strings.ToUpper(tag.AsString())
		case variable == "$DWGCODEPAGE" && tag.Code == 3:
			if id, ok := codepage.FromDXF(tag.AsString()); ok {
				d.CodePage = id
			} else {
				Logger().Warn("unknown code page", "name", tag.AsString())
			}
		}
	}

	if d.Version >= unicodeVersion || d.CodePage == codepage.UTF8 {
		return
	}
	enc, err := codepage.Lookup(d.CodePage)
	if err != nil {
		Logger().Warn("code page not supported", "codepage", d.CodePage, "error", err)
		return
	}
	scanner.SetDecoder(enc.NewDecoder())
}

func (d *Document) parseTables(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "TABLE" {
			scanner.Next()
			tableName := strings.ToUpper(scanner.LastTag.Value)
			if tableName == "LAYER" {
				d.parseLayers(scanner)
			}
		}
	}
}

func (d *Document) parseLayers(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDTAB" {
			break
		}

		if tag.Code == 0 && strings.ToUpper(tag.Value) == "LAYER" {
			layer := &Layer{}
			for scanner.Next() {
				t := scanner.LastTag
				if t.Code == 0 {
					break
				}
				switch t.Code {
				case 2:
					layer.Name = t.AsString()
				case 62:
					index := t.AsInt()
					if index < 0 {
						layer.Off = true
						index = -index
					}
					layer.Color.Index = &index
				case 420:
					rgb := t.AsInt() & 0xffffff
					layer.Color.True = &rgb
				case 430:
					layer.Color.Name = t.AsString()
				case 70:
					layer.Flags = t.AsInt()
				}
			}
			if layer.Name != "" {
				d.Layers = append(d.Layers, layer)
			}
			continue
		}

		if !scanner.Next() {
			break
		}
	}
}

// parseBlockHeader 读取 BLOCK 的组码，返回时停在第一个实体上
func (d *Document) parseBlockHeader(scanner *core.Scanner) *Block {
	block := &Block{}
	for scanner.Next() {
		t := scanner.LastTag
		if t.Code == 0 {
			break
		}
		switch t.Code {
		case 2:
			block.Name = t.AsString()
		case 10:
			block.Base.X = t.AsFloat()
		case 20:
			block.Base.Y = t.AsFloat()
		}
	}
	d.Blocks = append(d.Blocks, block)
	return block
}

func (d *Document) parseBlocks(scanner *core.Scanner) error {
	var current *Block
	if !scanner.Next() {
		return nil
	}
	for {
		tag := scanner.LastTag
		if tag.Code == 0 {
			switch strings.ToUpper(tag.Value) {
			case "ENDSEC":
				return nil
			case "BLOCK":
				current = d.parseBlockHeader(scanner)
				continue
			case "ENDBLK":
				current = nil
			default:
				if ent := entities.CreateEntity(tag.Value); ent != nil {
					if err := ent.Parse(scanner); err != nil {
						return err
					}
					if current != nil {
						current.Entities = append(current.Entities, ent)
					}
					continue
				}
			}
		}
		if !scanner.Next() {
			return nil
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 {
			ent := entities.CreateEntity(tag.Value)
			if ent != nil {
				if err := ent.Parse(scanner); err != nil {
					return err
				}
				d.Entities = append(d.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
	return nil
}

// assignSpaces 把 ENTITIES 段中的实体放入模型空间或图纸空间块，块不存在时追加到块表末尾
func (d *Document) assignSpaces() {
	var model, paper []entities.Entity
	for _, ent := range d.Entities {
		if ent.Base().PaperSpace {
			paper = append(paper, ent)
		} else {
			model = append(model, ent)
		}
	}

	ms := d.ModelSpace()
	if ms == nil {
		ms = &Block{Name: ModelSpaceName}
		d.Blocks = append(d.Blocks, ms)
	}
	ms.Entities = append(ms.Entities, model...)

	if len(paper) == 0 {
		return
	}
	ps := d.paperSpace()
	if ps == nil {
		ps = &Block{Name: PaperSpaceName}
		d.Blocks = append(d.Blocks, ps)
	}
	ps.Entities = append(ps.Entities, paper...)
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Entities: make([]entities.Entity, 0, 1024),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "HEADER":
				document.parseHeader(scanner)
			case "TABLES":
				document.parseTables(scanner)
			case "BLOCKS":
				err = document.parseBlocks(scanner)
			case "ENTITIES":
				err = document.parseEntities(scanner)
			}
			if err != nil {
				return nil, fmt.Errorf("cad2svg: %s: %w", strings.ToLower(sectionName), err)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("cad2svg: load: %w", err)
	}

	document.assignSpaces()
	Logger().Debug("dxf loaded",
		"version", document.Version,
		"codepage", document.CodePage,
		"blocks", len(document.Blocks),
		"layers", len(document.Layers),
		"entities", len(document.Entities))

	return document, nil
}
