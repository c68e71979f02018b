package scanner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-sorter/internal"
	"github.com/moyu-x/file-sorter/pkg/logger"
)

// DirScanner 读取单个目录的直接条目，不递归
type DirScanner struct {
	Fs afero.Fs
}

func NewDirScanner(fs afero.Fs) *DirScanner {
	return &DirScanner{Fs: fs}
}

// Validate 检查目标路径存在且是目录
func (s *DirScanner) Validate(dir string) error {
	if dir == "" {
		return fmt.Errorf("invalid directory %q: %w", dir, internal.ErrNotExist)
	}

	info, err := s.Fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("invalid directory %q: %w", dir, internal.ErrNotExist)
		}
		return fmt.Errorf("invalid directory %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("invalid directory %q: %w", dir, internal.ErrNotDirectory)
	}

	return nil
}

// Scan 列出目录中的条目
// 打开目录失败返回错误；单个条目读取失败记录在 FileEntry.Err 中
func (s *DirScanner) Scan(dir string) ([]internal.FileEntry, error) {
	f, err := s.Fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrOpenDirectory, err)
	}
	defer f.Close()

	infos, err := f.Readdir(-1)
	if err != nil && !errors.Is(err, io.EOF) {
		if len(infos) == 0 {
			return nil, fmt.Errorf("%w: %w", internal.ErrOpenDirectory, err)
		}
		logger.Get().Debug().Err(err).Str("dir", dir).Int("read", len(infos)).Msg("读取目录条目中断，使用已读取部分")
	}

	entries := make([]internal.FileEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, s.entry(dir, info))
	}

	logger.Get().Debug().Str("dir", dir).Int("entries", len(entries)).Msg("目录扫描完成")
	return entries, nil
}

// entry 构建条目，符号链接跟随到目标
func (s *DirScanner) entry(dir string, info os.FileInfo) internal.FileEntry {
	path := filepath.Join(dir, info.Name())
	e := internal.FileEntry{
		Name: info.Name(),
		Path: path,
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := s.Fs.Stat(path)
		if err != nil {
			logger.Get().Debug().Err(err).Str("path", path).Msg("无法解析符号链接")
			e.Err = err
			return e
		}
		info = target
	}

	e.Regular = info.Mode().IsRegular()
	e.Size = info.Size()
	return e
}
