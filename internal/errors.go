package internal

import "errors"

var (
	// ErrNotExist 目标路径不存在
	ErrNotExist = errors.New("directory does not exist")

	// ErrNotDirectory 目标路径不是目录
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrOpenDirectory 无法打开目录读取条目
	ErrOpenDirectory = errors.New("error reading directory")
)
