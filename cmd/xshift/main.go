// xshift 是 xorshift128 生成器的命令行工具。
//
// 用法:
//
//	xshift [全局选项] <x> <y> <z> <w>
//	xshift [全局选项] <命令> [命令参数]
//
// 不带命令时，以四个参数为种子输出一次原始 uint32 结果。
// 参数支持十进制、0x 十六进制、前导 0 八进制。
//
// 全局选项:
//
//	-c, --config      配置文件（.yaml/.yml/.json）
//	    --log-level   日志级别 (debug/info/warn/error，默认 info)
//	    --log-format  日志格式 (text/json，默认 text)
//
// 命令:
//
//	float [x y z w]   输出 [min, max] 内的浮点数
//	int [x y z w]     输出 [min, max] 内的整数
//	stream [x y z w]  连续输出 n 个原始值（种子逐次推进）
//	seed              生成种子 (--source time|secure|key|uuid)
//
// float/int/stream 未给出种子参数时，依次使用配置文件中的 seed 或 source。
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（种子或区间校验失败、配置文件读取失败等）
//	2: 参数错误（未知 flag、count 越界等）
//
// 示例:
//
//	xshift 4094795843 75119171 1064088777 3185678737       # 3297453526
//	xshift float --min 0 --max 1 4094795843 75119171 1064088777 3185678737
//	xshift int --min 1 --max 21 -n 5 $(xshift seed)
//	xshift seed --source key --key user-42
//	xshift -c profile.yaml stream
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xshift",
		Usage:     "xorshift128 伪随机数生成器",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		ArgsUsage: "<x> <y> <z> <w>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
		},
		Commands:     createCommands(),
		Action:       generateAction,
		OnUsageError: onUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := createApp(stdout, stderr)
	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已输出错误详情
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// cliUsageMarkers 是 urfave/cli 参数解析错误的特征文本。
var cliUsageMarkers = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
}

// isCLIUsageError 判断错误是否由 CLI 框架的参数解析产生。
func isCLIUsageError(err error) bool {
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return true
	}
	msg := err.Error()
	for _, marker := range cliUsageMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
