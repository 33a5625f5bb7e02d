package xshift

import "iter"

// Stream 是调用方持有的 xorshift128 序列。
//
// 每次取值都会用 [Next] 推进内部种子，因此 Stream 的第一个值等于
// Generate(seed)，第二个值等于 Generate 作用于推进后的种子，依此类推。
//
// Stream 不是并发安全的。并发场景下每个 goroutine 应持有各自的 Stream
// （通常使用不同的种子），而不是共享同一个实例。
type Stream struct {
	seed Seed
}

// NewStream 创建以 seed 为初始状态的 Stream。
func NewStream(seed Seed) *Stream {
	return &Stream{seed: seed}
}

// Seed 返回当前种子，即下一次取值将使用的状态。
func (s *Stream) Seed() Seed {
	return s.seed
}

// Reset 将 Stream 重置为 seed。
func (s *Stream) Reset(seed Seed) {
	s.seed = seed
}

// Uint32 返回下一个原始输出并推进种子。
func (s *Stream) Uint32() uint32 {
	v, next := Next(s.seed)
	s.seed = next
	return v
}

// Float 返回下一个 [lo, hi] 内的浮点数。
// 边界校验失败时返回错误，种子不推进。
func (s *Stream) Float(lo, hi float64) (float64, error) {
	return s.mapped(lo, hi, ModeFloat)
}

// Int 返回下一个 [lo, hi] 内的整数值。
// 边界校验失败时返回错误，种子不推进。
func (s *Stream) Int(lo, hi float64) (float64, error) {
	return s.mapped(lo, hi, ModeInt)
}

// Fill 用连续的原始输出填满 dst。
func (s *Stream) Fill(dst []uint32) {
	for i := range dst {
		dst[i] = s.Uint32()
	}
}

// Values 返回接下来 n 个原始输出的迭代器，迭代过程会推进 Stream。
// n <= 0 时返回空迭代器；提前 break 时只推进已产出的个数。
func (s *Stream) Values(n int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for range n {
			if !yield(s.Uint32()) {
				return
			}
		}
	}
}

func (s *Stream) mapped(lo, hi float64, mode Mode) (float64, error) {
	if err := checkBounds(lo, hi); err != nil {
		return 0, err
	}
	return mapRaw(s.Uint32(), lo, hi, mode)
}

// Sequence 返回从 seed 开始的 n 个原始输出的迭代器。
//
// Sequence 是纯函数：seed 按值复制，调用方持有的种子不受影响，
// 对同一 seed 多次迭代得到相同的序列。
func Sequence(seed Seed, n int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		cur := seed
		var v uint32
		for range n {
			v, cur = Next(cur)
			if !yield(v) {
				return
			}
		}
	}
}
