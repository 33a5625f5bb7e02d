package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/omeyang/xshift/internal/clilog"
	"github.com/omeyang/xshift/internal/profile"
	"github.com/omeyang/xshift/pkg/random/xseed"
	"github.com/omeyang/xshift/pkg/random/xshift"
	"github.com/urfave/cli/v3"
)

// usageError 表示参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createRangeCommand("float", "输出 [min, max] 内的浮点数", xshift.ModeFloat),
		createRangeCommand("int", "输出 [min, max] 内的整数（.5 向上取整）", xshift.ModeInt),
		createStreamCommand(),
		createSeedCommand(),
	}
}

func countFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   fmt.Sprintf("生成数量 [1, %d]", profile.MaxCount),
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "未给出种子时的来源 (time/secure/key/uuid)",
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "source 为 key 时用于派生种子的字符串",
		},
	}
}

// createRangeCommand 创建 float/int 子命令。
func createRangeCommand(name, usage string, mode xshift.Mode) *cli.Command {
	flags := []cli.Flag{
		&cli.FloatFlag{Name: "min", Usage: "下界（默认 0）"},
		&cli.FloatFlag{Name: "max", Usage: "上界（默认 1）"},
		countFlag(),
	}
	return &cli.Command{
		Name:         name,
		Usage:        usage,
		ArgsUsage:    "[x y z w]",
		Flags:        append(flags, sourceFlags()...),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			e.profile.Mode = mode.String()
			return cmdRange(ctx, e, cmd.Args().Slice())
		},
	}
}

// createStreamCommand 创建 stream 子命令。
func createStreamCommand() *cli.Command {
	return &cli.Command{
		Name:         "stream",
		Usage:        "连续输出 n 个原始 uint32 值",
		ArgsUsage:    "[x y z w]",
		Flags:        append([]cli.Flag{countFlag()}, sourceFlags()...),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return cmdStream(ctx, e, cmd.Args().Slice())
		},
	}
}

// createSeedCommand 创建 seed 子命令。
func createSeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "生成种子",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{Name: "hex", Usage: "以 32 位十六进制输出"},
		}, sourceFlags()...),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return cmdSeed(ctx, e, cmd.Bool("hex"))
		},
	}
}

// generateAction 是根命令的动作：输出一次原始结果。
func generateAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return &usageError{msg: "需要 4 个种子参数，或使用子命令（xshift --help）"}
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	seed, err := xseed.Parse(args)
	if err != nil {
		return err
	}
	e.logger.DebugContext(ctx, "generate", slog.String("seed", seed.String()))

	fmt.Fprintln(e.out, xshift.Generate(seed))
	return nil
}

// env 是单次命令执行的环境：合并后的配置、日志器与输出。
type env struct {
	profile *profile.Profile
	logger  *slog.Logger
	out     io.Writer
}

// loadEnv 合并默认值、配置文件与命令行参数。
// 优先级：命令行参数 > 配置文件 > 默认值。
func loadEnv(cmd *cli.Command) (*env, error) {
	p := profile.Default()
	path := cmd.String("config")
	if path != "" {
		loaded, err := profile.Load(path)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	applyFlags(cmd, p)
	if err := p.Validate(); err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	logger, err := clilog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevel(p.Log.Level).
		SetFormat(p.Log.Format).
		Build()
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	if path != "" {
		logger.Debug("profile loaded", slog.String("path", path))
	}

	return &env{profile: p, logger: logger, out: cmd.Root().Writer}, nil
}

// applyFlags 用显式设置的命令行参数覆盖配置。
func applyFlags(cmd *cli.Command, p *profile.Profile) {
	if cmd.IsSet("log-level") {
		p.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		p.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("min") {
		p.Min = cmd.Float("min")
	}
	if cmd.IsSet("max") {
		p.Max = cmd.Float("max")
	}
	if cmd.IsSet("count") {
		p.Count = cmd.Int("count")
	}
	if cmd.IsSet("source") {
		p.Source = cmd.String("source")
		// 显式指定来源时忽略配置文件中的种子
		p.Seed = nil
	}
	if cmd.IsSet("key") {
		p.Key = cmd.String("key")
	}
}

// resolveSeed 按 参数 > 配置种子 > 来源 的顺序确定种子。
func (e *env) resolveSeed(ctx context.Context, args []string) (xshift.Seed, error) {
	switch {
	case len(args) > 0:
		e.logger.DebugContext(ctx, "seed from arguments")
		return xseed.Parse(args)
	case len(e.profile.Seed) > 0:
		e.logger.DebugContext(ctx, "seed from profile")
		return xshift.NewSeed(e.profile.Seed)
	default:
		return e.sourceSeed(ctx)
	}
}

func (e *env) sourceSeed(ctx context.Context) (xshift.Seed, error) {
	source := strings.ToLower(e.profile.Source)
	e.logger.DebugContext(ctx, "seed from source", slog.String("source", source))

	switch source {
	case profile.SourceTime:
		return xseed.TimeSeed(), nil
	case profile.SourceKey:
		return xseed.FromKey(e.profile.Key), nil
	case profile.SourceUUID:
		return xseed.NewUUIDSeed()
	default:
		return xseed.SecureSeed()
	}
}

// cmdRange 输出 count 个区间映射结果，种子逐次推进。
func cmdRange(ctx context.Context, e *env, args []string) error {
	seed, err := e.resolveSeed(ctx, args)
	if err != nil {
		return err
	}
	mode, err := xshift.ParseMode(e.profile.Mode)
	if err != nil {
		return err
	}

	s := xshift.NewStream(seed)
	for range e.profile.Count {
		if err := ctx.Err(); err != nil {
			return err
		}

		var v float64
		if mode == xshift.ModeInt {
			v, err = s.Int(e.profile.Min, e.profile.Max)
		} else {
			v, err = s.Float(e.profile.Min, e.profile.Max)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, strconv.FormatFloat(v, 'f', -1, 64))
	}
	e.logger.DebugContext(ctx, "range done",
		slog.String("mode", mode.String()),
		slog.Int("count", e.profile.Count),
		slog.String("next_seed", s.Seed().String()))
	return nil
}

// cmdStream 输出 count 个原始值。
func cmdStream(ctx context.Context, e *env, args []string) error {
	seed, err := e.resolveSeed(ctx, args)
	if err != nil {
		return err
	}

	s := xshift.NewStream(seed)
	for v := range s.Values(e.profile.Count) {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(e.out, v)
	}
	e.logger.DebugContext(ctx, "stream done", slog.String("next_seed", s.Seed().String()))
	return nil
}

// cmdSeed 输出一个种子，默认格式可直接作为 xshift 的参数。
func cmdSeed(ctx context.Context, e *env, asHex bool) error {
	seed, err := e.sourceSeed(ctx)
	if err != nil {
		return err
	}
	if asHex {
		fmt.Fprintln(e.out, xseed.Hex(seed))
		return nil
	}
	fmt.Fprintf(e.out, "%d %d %d %d\n", seed[0], seed[1], seed[2], seed[3])
	return nil
}
