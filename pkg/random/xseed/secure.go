package xseed

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/omeyang/xshift/pkg/random/xshift"
)

// seedBytes 是一个种子的字节数（128 位）。
const seedBytes = xshift.SeedLen * 4

// hexWord 是单个字的十六进制位数。
const hexWord = 8

// SecureSeed 从 crypto/rand 读取 16 字节生成种子。
func SecureSeed() (xshift.Seed, error) {
	return SecureSeedFrom(rand.Reader)
}

// SecureSeedFrom 从 r 读取 16 字节生成种子。
//
// 字节先编码为 32 位十六进制串，再每 8 位解析为一个字，
// 即按大端序组成 (x, y, z, w)。
//
// 读取不足 16 字节时返回 [ErrEntropy]；读到全零时返回 [ErrZeroSeed]。
func SecureSeedFrom(r io.Reader) (xshift.Seed, error) {
	if r == nil {
		return xshift.Seed{}, ErrNilReader
	}

	var buf [seedBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return xshift.Seed{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	seed, err := ParseHex(hex.EncodeToString(buf[:]))
	if err != nil {
		return xshift.Seed{}, err
	}
	if seed.IsZero() {
		return xshift.Seed{}, ErrZeroSeed
	}
	return seed, nil
}

// ParseHex 解析 32 位十六进制串（可带 0x 前缀）为种子，每 8 位一个字。
// 格式错误返回包装了 [xshift.ErrInvalidSeed] 的错误。
func ParseHex(s string) (xshift.Seed, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(s) != seedBytes*2 {
		return xshift.Seed{}, fmt.Errorf("%w: want %d hex digits, got %d", xshift.ErrInvalidSeed, seedBytes*2, len(s))
	}

	var seed xshift.Seed
	for i := range seed {
		part := s[i*hexWord : (i+1)*hexWord]
		v, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return xshift.Seed{}, fmt.Errorf("%w: bad hex word %q", xshift.ErrInvalidSeed, part)
		}
		seed[i] = uint32(v)
	}
	return seed, nil
}

// Hex 返回种子的 32 位小写十六进制表示，是 [ParseHex] 的逆操作。
func Hex(seed xshift.Seed) string {
	return fmt.Sprintf("%08x%08x%08x%08x", seed[0], seed[1], seed[2], seed[3])
}
