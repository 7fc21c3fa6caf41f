package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/cad2svg"
	"github.com/zooyer/cad2svg/curve"
	"github.com/zooyer/cad2svg/raster"
	"github.com/zooyer/cad2svg/svg"
	"github.com/zooyer/cad2svg/utils"
)

var (
	output  = flag.String("o", "", "SVG 输出路径, 默认与图纸同名")
	pngPath = flag.String("png", "", "PNG 预览输出路径")
	size    = flag.Int("size", raster.DefaultSize, "PNG 最长边像素")
	csvPath = flag.String("csv", "", "图层统计 CSV 路径(追加写入)")
	density = flag.Int("density", curve.DefaultDensity, "样条每个节点区间的采样数")
	verbose = flag.Bool("v", false, "输出调试日志")
)

func init() {
	if strings.HasPrefix(filepath.Base(os.Args[0]), "___go_build_") {
		os.Args = append(os.Args, "cmd/testdata/sample.dxf")
	}
}

// selectFile 未指定图纸时弹出文件选择框
func selectFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("选择 DXF 图纸"),
		zenity.FileFilters{
			{Name: "DXF 图纸", Patterns: []string{"*.dxf", "*.DXF"}},
		},
	)
}

func svgName(input string) string {
	if *output != "" {
		return *output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

func run(input string) error {
	doc, err := cad2svg.Open(input)
	if err != nil {
		return err
	}

	conv := svg.New(svg.WithSplineDensity(*density), svg.WithLogger(cad2svg.Logger()))
	out := conv.Convert(doc)

	filename := svgName(input)
	if err = os.WriteFile(filename, []byte(out), 0644); err != nil {
		return err
	}

	if *pngPath != "" {
		img, err := raster.Render(strings.NewReader(out), *size)
		if err != nil {
			return err
		}
		file, err := os.Create(*pngPath)
		if err != nil {
			return err
		}
		if err = raster.WritePNG(file, img); err != nil {
			_ = file.Close()
			return err
		}
		if err = file.Close(); err != nil {
			return err
		}
	}

	summary := utils.Summarize(doc)
	fmt.Println(renderSummary(input, filename, summary))

	if *csvPath != "" {
		if err = writeCSV(*csvPath, input, summary); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	cad2svg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	input := flag.Arg(0)
	interactive := input == ""
	if interactive {
		// 双击运行时保留窗口
		defer xos.PauseExit()

		var err error
		if input, err = selectFile(); err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				fmt.Println(errorStyle.Render(err.Error()))
			}
			return
		}
	}

	if err := run(input); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		if !interactive {
			os.Exit(1)
		}
	}
}
