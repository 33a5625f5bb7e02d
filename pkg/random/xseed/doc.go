// Package xseed 为 [xshift] 生成器提供种子来源。
//
// xshift 本身不产生熵，种子完全由调用方提供。本包汇集常用的种子来源：
//
//   - [TimeSeed]: 由当前时间派生，非密码学安全，适合测试数据、模拟等场景
//   - [SecureSeed]: 从 crypto/rand 读取 16 字节
//   - [FromKey]: 由字符串确定性派生（xxhash），同一 key 在所有进程中得到同一种子
//   - [FromUUID] / [NewUUIDSeed]: 使用 UUID 的 128 位作为种子
//   - [Parse] / [ParseHex]: 解析命令行或配置中的文本种子
//
// 除 Parse/ParseHex 外，所有来源都保证不返回全零种子（全零是 xorshift 的不动点）。
//
// 注意：即使种子来自 crypto/rand，xshift 生成的序列也不是密码学安全的。
//
// [xshift]: https://pkg.go.dev/github.com/omeyang/xshift/pkg/random/xshift
package xseed
