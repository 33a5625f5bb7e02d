package xshift

// xorshift128 的移位参数（Marsaglia 2003）。
const (
	shiftA = 11
	shiftB = 8
	shiftC = 19
)

// Generate 对种子执行一次 xorshift128 混合变换，返回原始 uint32 输出。
//
// Generate 是全函数：任何 Seed 都是合法输入，不会失败，也不做校验。
// 种子按值传递，调用方的数组不会被修改；重复调用同一个种子得到同一个值。
// 需要下一个值时使用 [Next] 推进种子。
//
// 注意：全零种子是不动点，输出恒为 0。
func Generate(seed Seed) uint32 {
	out, _ := Next(seed)
	return out
}

// Next 与 [Generate] 返回相同的值，同时返回推进后的种子 {y, z, w, out}。
//
// 用于显式地迭代生成器：
//
//	for range n {
//	    v, seed = xshift.Next(seed)
//	}
func Next(seed Seed) (uint32, Seed) {
	x, y, z, w := seed[0], seed[1], seed[2], seed[3]

	t := x ^ (x << shiftA)
	t ^= t >> shiftB

	x, y, z = y, z, w
	w ^= (w >> shiftC) ^ t

	return w, Seed{x, y, z, w}
}
