package xshift

import (
	"fmt"
	"math"
)

// SeedLen 是种子的字数。
const SeedLen = 4

// maxWord 是种子单个字的上界，也是原始输出归一化的除数。
const maxWord = math.MaxUint32

// Seed 是 xorshift128 的 4 字状态 (x, y, z, w)。
//
// Seed 是值类型，按值传递时会被复制；包内函数从不修改调用方持有的种子。
// 由于元素类型为 uint32，任何 Seed 值都满足 [0, 4294967295] 的约束。
type Seed [SeedLen]uint32

// IsZero 报告种子是否全为零。
// 全零种子是 xorshift 的不动点，[Generate] 对它恒返回 0。
func (s Seed) IsZero() bool {
	return s == Seed{}
}

// String 返回 "[x y z w]" 形式的十进制表示。
func (s Seed) String() string {
	return fmt.Sprintf("[%d %d %d %d]", s[0], s[1], s[2], s[3])
}

// Word 是可以承载未校验种子元素的数值类型。
//
// 浮点类型的元素必须是整数值（1.0 合法，1.5、NaN、Inf 不合法）。
type Word interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NewSeed 校验 words 并构造 [Seed]。
//
// words 必须恰好包含 4 个元素，每个元素都是 [0, 4294967295] 内的整数，
// 否则返回 [ErrInvalidSeed]。
func NewSeed[W Word](words []W) (Seed, error) {
	var s Seed
	if len(words) != SeedLen {
		return s, ErrInvalidSeed
	}
	for i, w := range words {
		if !validWord(w) {
			return Seed{}, ErrInvalidSeed
		}
		s[i] = uint32(w)
	}
	return s, nil
}

// MustSeed 与 [NewSeed] 相同，但校验失败时 panic。
// 仅适用于常量种子等不可能失败的场景。
func MustSeed[W Word](words ...W) Seed {
	s, err := NewSeed(words)
	if err != nil {
		panic(err)
	}
	return s
}

// validWord 报告 w 是否为 [0, maxWord] 内的整数。
// 统一转换为 float64 比较：超出 2^53 的整数即使舍入也仍大于 maxWord。
func validWord[W Word](w W) bool {
	f := float64(w)
	return f == math.Trunc(f) && f >= 0 && f <= maxWord
}
