package xseed

import (
	"time"

	"github.com/omeyang/xshift/pkg/random/xshift"
)

// splitmix64 增量（黄金分割常数）。
const golden = 0x9e3779b97f4a7c15

// TimeSeed 返回由当前时间派生的种子。
//
// 熵只来自纳秒时间戳，同一纳秒内的调用会得到相同的种子；
// 不要用于安全场景，也不要依赖它在高并发下互不相同。
func TimeSeed() xshift.Seed {
	return TimeSeedAt(time.Now())
}

// TimeSeedAt 与 [TimeSeed] 相同，但使用指定时间，结果是确定的。
//
// 时间戳经 splitmix64 扩展为 128 位，相邻时间点得到差异很大的种子。
func TimeSeedAt(t time.Time) xshift.Seed {
	state := uint64(t.UnixNano())
	for {
		a, b := splitmix64(&state), splitmix64(&state)
		seed := xshift.Seed{uint32(a >> 32), uint32(a), uint32(b >> 32), uint32(b)}
		if !seed.IsZero() {
			return seed
		}
	}
}

func splitmix64(state *uint64) uint64 {
	*state += golden
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
