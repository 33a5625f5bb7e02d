package xseed

import "errors"

// 种子生成相关的错误。
var (
	// ErrNilReader 表示熵源 reader 为 nil。
	ErrNilReader = errors.New("xseed: nil entropy reader")

	// ErrEntropy 表示从熵源读取失败。
	ErrEntropy = errors.New("xseed: failed to read entropy")

	// ErrZeroSeed 表示来源产生了全零种子。
	ErrZeroSeed = errors.New("xseed: source produced an all-zero seed")
)
