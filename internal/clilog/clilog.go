// Package clilog 为命令行工具构建 log/slog 日志器。
//
// 级别与格式的解析规则与 XKit xlog 一致：级别支持 debug/info/warn/warning/error，
// 格式支持 text/json，均大小写不敏感并自动 TrimSpace，空值使用默认值。
package clilog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// 日志格式。
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidOption 表示级别或格式无法识别。
var ErrInvalidOption = errors.New("clilog: invalid option")

// ParseLevel 解析日志级别，空字符串视为 info。
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown level %q", ErrInvalidOption, s)
	}
}

// ParseFormat 规范化日志格式，空字符串视为 text。
func ParseFormat(s string) (string, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(s)); normalized {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidOption, s)
	}
}

// Builder 日志器构建器。
//
// 配置错误会被记录下来，由 Build 统一返回，便于链式调用。
type Builder struct {
	output io.Writer
	level  slog.Level
	format string
	err    error
}

// New 创建构建器，默认输出到 stderr、info 级别、text 格式。
func New() *Builder {
	return &Builder{
		output: os.Stderr,
		level:  slog.LevelInfo,
		format: FormatText,
	}
}

// SetOutput 设置输出目标，nil 时保持原值。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if w != nil {
		b.output = w
	}
	return b
}

// SetLevel 通过字符串设置级别。
func (b *Builder) SetLevel(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.level = level
	return b
}

// SetFormat 设置输出格式。
func (b *Builder) SetFormat(s string) *Builder {
	format, err := ParseFormat(s)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.format = format
	return b
}

// Build 返回配置好的 *slog.Logger。
func (b *Builder) Build() (*slog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	opts := &slog.HandlerOptions{Level: b.level}
	var h slog.Handler
	if b.format == FormatJSON {
		h = slog.NewJSONHandler(b.output, opts)
	} else {
		h = slog.NewTextHandler(b.output, opts)
	}
	return slog.New(h), nil
}

// Discard 返回丢弃所有输出的日志器。
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
