package internal

// FileEntry 目录中的一个条目，由扫描器提供，只读
type FileEntry struct {
	Name    string
	Path    string
	Regular bool // 跟随符号链接后是否为普通文件
	Size    int64
	Err     error // 读取条目元数据失败时非空
}
