package cad2svg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃所有日志，Enabled 返回 false 时调用方不会格式化消息
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger 设置 cad2svg 及其子包使用的日志，默认不输出任何日志，传 nil 恢复静默。
//
// 日志级别：
//   - [slog.LevelDebug]: 解析与转换过程中的统计信息
//   - [slog.LevelWarn]: 不影响输出的问题（如引用了尚未定义的块）
//
// 示例：
//
//	cad2svg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger 返回当前日志，可并发调用
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
