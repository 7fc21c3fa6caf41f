package svg

import (
	"log/slog"

	"github.com/zooyer/cad2svg/curve"
)

// Option 配置 Converter
//
// 示例：
//
//	c := svg.New(svg.WithSplineDensity(50))
type Option func(*options)

type options struct {
	density int
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		density: curve.DefaultDensity,
		logger:  nil, // 为空时使用 cad2svg.Logger()
	}
}

// WithSplineDensity 样条每个节点区间的采样数，小于等于 0 时使用默认值 25
func WithSplineDensity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.density = n
		}
	}
}

// WithLogger 为该转换器单独指定日志
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
