package xshift

import (
	"fmt"
	"math"
	"strings"
)

// Mode 决定区间映射的结果形式。
type Mode int

// 支持的映射模式。
const (
	// ModeFloat 返回 [min, max] 内的浮点数。
	ModeFloat Mode = iota

	// ModeInt 返回四舍五入（.5 向上）后的整数值。
	ModeInt
)

// String 返回模式名称。
func (m Mode) String() string {
	switch m {
	case ModeFloat:
		return "float"
	case ModeInt:
		return "int"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode 解析模式名称，支持 float/int/integer（大小写不敏感）。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float":
		return ModeFloat, nil
	case "int", "integer":
		return ModeInt, nil
	default:
		return ModeFloat, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Float 校验种子和区间，返回 [lo, hi] 内的浮点数。
//
// 计算方式为 lo + raw/4294967295*(hi-lo)，raw 为 [Generate] 的输出。
// 校验顺序见包文档。
func Float[W Word](seed []W, lo, hi float64) (float64, error) {
	return Evaluate(seed, lo, hi, ModeFloat)
}

// Int 与 [Float] 相同，但结果四舍五入为整数（.5 向正无穷取整）。
//
// 返回值是整数值的 float64，以便表示超出 int64 的区间。
func Int[W Word](seed []W, lo, hi float64) (float64, error) {
	return Evaluate(seed, lo, hi, ModeInt)
}

// Evaluate 是 [Float] 与 [Int] 的通用入口。
//
// 校验失败时返回对应的哨兵错误且结果为 0；第一个失败的规则生效，
// 种子错误总是先于 min/max 错误报告。
func Evaluate[W Word](seed []W, lo, hi float64, mode Mode) (float64, error) {
	s, err := NewSeed(seed)
	if err != nil {
		return 0, err
	}
	return evaluate(s, lo, hi, mode)
}

// FloatSeed 与 [Float] 相同，但接受已构造的 [Seed]，跳过种子校验。
func FloatSeed(seed Seed, lo, hi float64) (float64, error) {
	return evaluate(seed, lo, hi, ModeFloat)
}

// IntSeed 与 [Int] 相同，但接受已构造的 [Seed]，跳过种子校验。
func IntSeed(seed Seed, lo, hi float64) (float64, error) {
	return evaluate(seed, lo, hi, ModeInt)
}

func evaluate(seed Seed, lo, hi float64, mode Mode) (float64, error) {
	if err := checkBounds(lo, hi); err != nil {
		return 0, err
	}
	return mapRaw(Generate(seed), lo, hi, mode)
}

// checkBounds 按 min、max、区间的顺序校验边界。
func checkBounds(lo, hi float64) error {
	switch {
	case !isNumber(lo):
		return ErrInvalidMin
	case !isNumber(hi):
		return ErrInvalidMax
	case lo >= hi:
		return ErrInvalidRange
	}
	return nil
}

// mapRaw 将原始输出映射到 [lo, hi]，调用前边界必须已通过 checkBounds。
func mapRaw(raw uint32, lo, hi float64, mode Mode) (float64, error) {
	switch mode {
	case ModeFloat:
		return scale(raw, lo, hi), nil
	case ModeInt:
		v := roundHalfUp(scale(raw, lo, hi))
		// 区间内存在整数时，取整结果不越界
		if first, last := math.Ceil(lo), math.Floor(hi); first <= last {
			v = clamp(v, first, last)
		}
		return v, nil
	default:
		return 0, ErrInvalidMode
	}
}

// scale 计算 lo + raw/maxWord*(hi-lo)。
//
// 乘积显式转换为 float64，禁止编译器在支持 FMA 的平台上融合乘加，
// 保证各平台结果逐位一致。
func scale(raw uint32, lo, hi float64) float64 {
	r := float64(raw) / maxWord
	span := hi - lo
	if math.IsInf(span, 0) {
		// 跨度溢出（如 [-MaxFloat64, MaxFloat64]）时改用插值形式
		return clamp(float64(lo*(1-r))+float64(hi*r), lo, hi)
	}
	return clamp(lo+float64(r*span), lo, hi)
}

// roundHalfUp 四舍五入，.5 向正无穷取整：2.5 → 3，-2.5 → -2。
// 与 math.Round（远离零）不同。v - floor(v) 在 float64 中是精确的。
func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// isNumber 报告 v 是否为有限数值。
func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
