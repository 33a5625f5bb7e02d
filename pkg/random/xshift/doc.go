// Package xshift 提供纯函数式的 xorshift128 伪随机数生成器。
//
// # 设计理念
//
// xshift 不持有任何内部状态：种子由调用方持有并显式传递。
// 同一个种子永远得到同一个输出，生成器不会"自动前进"。
// 需要连续序列时，调用方使用 [Next] 取得下一个种子，或使用自己持有的 [Stream]。
//
// 算法来自 Marsaglia (2003) "Xorshift RNGs"，移位参数为 11/8/19，
// 全程使用 uint32 定宽运算（逻辑右移、左移溢出回绕），输出与参考实现逐位一致。
//
// 注意：xshift 不是密码学安全的随机数生成器，不要用于密钥、令牌等安全场景。
//
// # 功能概览
//
//   - [Generate]: 核心混合变换，Seed → uint32
//   - [Next]: 同 Generate，额外返回推进后的种子
//   - [NewSeed]: 校验任意数值类型的四元组并构造 Seed
//   - [Float] / [Int]: 校验种子与区间后，将原始输出线性映射到 [min, max]
//   - [Evaluate]: Float/Int 的通用入口，按 [Mode] 选择浮点或取整
//   - [Stream]: 调用方持有的序列封装，非并发安全
//
// # 校验顺序
//
// Float/Int/Evaluate 按以下顺序校验，第一个失败即返回：
//
//  1. 种子必须是 4 个 [0, 4294967295] 内的整数 → [ErrInvalidSeed]
//  2. min 必须是数字（非 NaN/Inf） → [ErrInvalidMin]
//  3. max 必须是数字（非 NaN/Inf） → [ErrInvalidMax]
//  4. min 必须严格小于 max → [ErrInvalidRange]
//
// 校验失败只返回错误，不返回部分结果；核心 [Generate] 本身不会失败。
//
// # 快速开始
//
//	seed := xshift.Seed{4094795843, 75119171, 1064088777, 3185678737}
//	raw := xshift.Generate(seed)        // 3297453526
//
//	v, err := xshift.Float(seed[:], 0, 1) // 0.7677482270560573
//	if err != nil {
//	    return err
//	}
//
//	// 连续生成：显式推进种子
//	raw, seed = xshift.Next(seed)
//
// # 并发
//
// 所有包级函数都是纯函数，可以在多个 goroutine 中并发调用，无需任何同步。
// [Stream] 持有可变种子，每个 goroutine 应使用各自的 Stream。
//
// # 相关包
//
//   - 种子来源（时间、crypto/rand、字符串、UUID）：[github.com/omeyang/xshift/pkg/random/xseed]
package xshift
