package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-sorter/pkg/grouping"
	"github.com/moyu-x/file-sorter/pkg/logger"
	"github.com/moyu-x/file-sorter/pkg/reporter"
	"github.com/moyu-x/file-sorter/pkg/scanner"
)

type SortOptions struct {
	Directory string // 由 ResolveDirectory 得到，空字符串视为无效目录
	Format    string
	Color     bool
	Out       io.Writer
	Fs        afero.Fs
}

// ResolveDirectory 取第一个位置参数，只有没有参数时才使用当前工作目录
// 显式传入的空字符串原样返回，由校验报告为不存在
func ResolveDirectory(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get current directory: %w", err)
	}
	return dir, nil
}

// RunSort 校验目录、扫描、分组并输出报告
// 校验或打开目录失败时不产生任何输出
func RunSort(opts *SortOptions) (*grouping.Summary, error) {
	format, err := reporter.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	dir := opts.Directory
	s := scanner.NewDirScanner(fs)
	if err := s.Validate(dir); err != nil {
		logger.Get().Debug().Err(err).Str("dir", dir).Msg("目录校验失败")
		return nil, err
	}

	logger.Get().Info().Str("dir", dir).Msg("开始扫描目录")

	entries, err := s.Scan(dir)
	if err != nil {
		return nil, err
	}

	g := grouping.Group(entries)
	summary := g.Summarize()

	logger.Get().Info().
		Int("total_files", summary.TotalFiles).
		Int("categories", summary.Categories).
		Msg("分类完成")

	if err := reporter.New(out, format, opts.Color).Write(reporter.Build(dir, g)); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	return &summary, nil
}

// ListExtensions 输出扩展名分类表
func ListExtensions(out io.Writer, color bool) error {
	if out == nil {
		out = os.Stdout
	}
	return reporter.New(out, reporter.FormatText, color).WriteExtensionTable()
}
