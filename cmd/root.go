package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moyu-x/file-sorter/app"
	"github.com/moyu-x/file-sorter/config"
	"github.com/moyu-x/file-sorter/pkg/logger"
)

var (
	cfgFile        string // 配置文件路径
	verbose        bool   // 调试日志
	noColor        bool   // 禁用彩色输出
	listExtensions bool   // 仅输出扩展名分类表
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-sorter [directory]",
	Short: "按扩展名对目录中的文件分类并输出报告",
	Long: `读取指定目录（默认为当前目录）中的文件，不递归子目录。
根据扩展名将每个普通文件归入一个分类（文本、图片、音频、源代码等），
然后输出每个非空分类的文件数量和文件列表。不会移动或修改任何文件。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.File); err != nil {
		return err
	}

	color := cfg.Output.Color && !noColor

	if listExtensions {
		return app.ListExtensions(cmd.OutOrStdout(), color)
	}

	dir, err := app.ResolveDirectory(args)
	if err != nil {
		return err
	}

	_, err = app.RunSort(&app.SortOptions{
		Directory: dir,
		Format:    cfg.Output.Format,
		Color:     color,
		Out:       cmd.OutOrStdout(),
	})
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认 $HOME/.file-sorter/config.yaml)")

	rootCmd.Flags().StringP("format", "f", "text", "输出格式: text, json 或 yaml")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "禁用彩色输出")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "启用调试日志")
	rootCmd.Flags().BoolVar(&listExtensions, "list-extensions", false, "列出每个分类包含的扩展名")

	if err := viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format")); err != nil {
		panic(err)
	}
}
