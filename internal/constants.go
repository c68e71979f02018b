package internal

const (
	// 配置文件名（不含扩展名）
	DefaultConfigName = "config"

	// 配置文件搜索目录
	DefaultConfigDir = "$HOME/.file-sorter"
	SystemConfigDir  = "/etc/file-sorter"

	// 环境变量前缀
	EnvPrefix = "FILE_SORTER"

	// 默认日志级别
	DefaultLogLevel = "warn"

	// 默认输出格式
	DefaultOutputFormat = "text"
)
