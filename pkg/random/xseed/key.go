package xseed

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/omeyang/xshift/pkg/random/xshift"
)

// keyFallback 在 key 的哈希恰好为全零时使用。
var keyFallback = xshift.Seed{0x9e3779b9, 0x7f4a7c15, 0xf39cc060, 0x5cedc834}

// FromKey 由字符串确定性地派生种子。
//
// 使用 xxhash：先对 key 求 64 位摘要，再在同一摘要状态上追加一个分隔字节求第二个摘要，
// 两者拼成 128 位。xxhash 是确定性的，同一 key 在所有进程、所有平台上得到同一种子，
// 适合按用户 ID、trace ID 等做可复现的随机。
func FromKey(key string) xshift.Seed {
	d := xxhash.New()
	_, _ = d.WriteString(key)
	hi := d.Sum64()
	_, _ = d.Write([]byte{0xff})
	lo := d.Sum64()

	seed := xshift.Seed{uint32(hi >> 32), uint32(hi), uint32(lo >> 32), uint32(lo)}
	if seed.IsZero() {
		return keyFallback
	}
	return seed
}

// FromUUID 将 UUID 的 128 位按大端序拆为四个字。
// uuid.Nil 会得到全零种子，此时返回 [ErrZeroSeed]。
func FromUUID(id uuid.UUID) (xshift.Seed, error) {
	var seed xshift.Seed
	for i := range seed {
		seed[i] = binary.BigEndian.Uint32(id[i*4:])
	}
	if seed.IsZero() {
		return xshift.Seed{}, ErrZeroSeed
	}
	return seed, nil
}

// NewUUIDSeed 生成随机 UUIDv4 并转换为种子。
//
// UUIDv4 中有 6 位是固定的版本/变体位，熵为 122 位；需要满 128 位时使用 [SecureSeed]。
func NewUUIDSeed() (xshift.Seed, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return xshift.Seed{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return FromUUID(id)
}
