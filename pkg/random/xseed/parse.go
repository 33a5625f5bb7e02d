package xseed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/xshift/pkg/random/xshift"
)

// Parse 解析四个文本字为种子。
//
// 每个字按 C strtol 基数 0 的规则解析：十进制、0x 十六进制、前导 0 八进制。
// Go 字面量特有的 0b、0o 前缀与 _ 分隔符不被接受。
// 解析失败、个数不为 4 或超出 [0, 4294967295] 时，返回包装了 [xshift.ErrInvalidSeed] 的错误。
func Parse(args []string) (xshift.Seed, error) {
	if len(args) != xshift.SeedLen {
		return xshift.Seed{}, fmt.Errorf("%w: got %d words", xshift.ErrInvalidSeed, len(args))
	}

	words := make([]int64, len(args))
	for i, arg := range args {
		v, err := parseWord(strings.TrimSpace(arg))
		if err != nil {
			return xshift.Seed{}, fmt.Errorf("%w: word %d is %q", xshift.ErrInvalidSeed, i, arg)
		}
		words[i] = v
	}

	seed, err := xshift.NewSeed(words)
	if err != nil {
		return xshift.Seed{}, fmt.Errorf("%w: got %v", err, words)
	}
	return seed, nil
}

// parseWord 解析单个字，拒绝 strtol 不认识的写法。
func parseWord(s string) (int64, error) {
	body := strings.TrimLeft(s, "+-")
	if strings.ContainsRune(body, '_') {
		return 0, strconv.ErrSyntax
	}
	if len(body) > 1 && body[0] == '0' {
		switch body[1] {
		case 'b', 'B', 'o', 'O':
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(s, 0, 64)
}
