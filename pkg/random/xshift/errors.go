package xshift

import "errors"

// 校验相关的错误。
//
// 错误文本与参考实现保持一致，调用方可能直接比较消息内容，因此不带包前缀。
// 这些错误都表示调用方误用，重试没有意义。
var (
	// ErrInvalidSeed 表示种子不是 4 个 [0, 4294967295] 内的整数。
	ErrInvalidSeed = errors.New("Seed must be an array of four integers between [0, 4294967295]") //nolint:staticcheck // 消息需与参考实现一致

	// ErrInvalidMin 表示 min 不是数字（NaN 或 ±Inf）。
	ErrInvalidMin = errors.New("Min must be a number") //nolint:staticcheck // 同上

	// ErrInvalidMax 表示 max 不是数字（NaN 或 ±Inf）。
	ErrInvalidMax = errors.New("Max must be a number") //nolint:staticcheck // 同上

	// ErrInvalidRange 表示 min >= max。
	ErrInvalidRange = errors.New("Min must be less than max") //nolint:staticcheck // 同上

	// ErrInvalidMode 表示 Mode 不是 ModeFloat 或 ModeInt。
	ErrInvalidMode = errors.New("xshift: invalid mode, must be ModeFloat or ModeInt")
)
