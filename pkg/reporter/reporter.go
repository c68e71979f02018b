package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"gopkg.in/yaml.v3"

	"github.com/moyu-x/file-sorter/pkg/classifier"
	"github.com/moyu-x/file-sorter/pkg/grouping"
)

// OutputFormat 输出格式
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Formats 支持的输出格式
var Formats = []OutputFormat{FormatText, FormatJSON, FormatYAML}

// ParseFormat 校验格式名称
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %s", s)
}

// Report 一次扫描的结果，可序列化
type Report struct {
	Directory   string           `json:"directory" yaml:"directory"`
	TotalFiles  int              `json:"total_files" yaml:"total_files"`
	Fingerprint string           `json:"fingerprint" yaml:"fingerprint"` // 分组成员的 xxHash，内容相同的两次扫描结果一致
	Categories  []CategoryReport `json:"categories" yaml:"categories"`
}

// CategoryReport 一个非空分类
type CategoryReport struct {
	Name  string       `json:"name" yaml:"name"`
	Count int          `json:"count" yaml:"count"`
	Files []FileReport `json:"files" yaml:"files"`
}

// FileReport 已分类的文件
type FileReport struct {
	Name      string `json:"name" yaml:"name"`
	Path      string `json:"path" yaml:"path"`
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
	MIME      string `json:"mime,omitempty" yaml:"mime,omitempty"`
}

// Build 将分组转换为报告，只保留非空分类
func Build(dir string, g *grouping.Grouping) *Report {
	summary := g.Summarize()
	report := &Report{
		Directory:   dir,
		TotalFiles:  summary.TotalFiles,
		Fingerprint: strconv.FormatUint(g.Fingerprint(), 16),
		Categories:  make([]CategoryReport, 0, summary.Categories),
	}

	for _, c := range g.NonEmpty() {
		files := g.Files(c)
		cr := CategoryReport{
			Name:  c.String(),
			Count: len(files),
			Files: make([]FileReport, 0, len(files)),
		}
		for _, f := range files {
			fr := FileReport{Name: f.Name, Path: f.Path}
			if ext, ok := classifier.ExtractExtension(f.Name); ok {
				fr.Extension = strings.ToLower(ext)
				fr.MIME = mimeHint(fr.Extension)
			}
			cr.Files = append(cr.Files, fr)
		}
		report.Categories = append(report.Categories, cr)
	}

	return report
}

// mimeHint 按扩展名查询 filetype 的类型表，不读取文件内容
func mimeHint(ext string) string {
	kind := filetype.GetType(ext)
	if kind == types.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// Reporter 报告输出
type Reporter struct {
	writer io.Writer
	format OutputFormat
	color  bool
}

// New 创建 Reporter
func New(writer io.Writer, format OutputFormat, color bool) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
		color:  color,
	}
}

// Write 按配置的格式输出报告
func (r *Reporter) Write(report *Report) error {
	switch r.format {
	case FormatText:
		return r.writeText(report)
	case FormatJSON:
		return r.writeJSON(report)
	case FormatYAML:
		return r.writeYAML(report)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// writeText 控制台文本列表
func (r *Reporter) writeText(report *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", r.style(labelStyle, "Scanning directory:"), report.Directory)
	fmt.Fprintf(&b, "\n%s\n\n", r.style(summaryStyle,
		fmt.Sprintf("Found %d files in %d categories:", report.TotalFiles, len(report.Categories))))

	for _, c := range report.Categories {
		fmt.Fprintf(&b, "📁 %s %s\n", r.style(categoryStyle, c.Name), r.style(countStyle, fmt.Sprintf("(%d files)", c.Count)))
		for _, f := range c.Files {
			fmt.Fprintf(&b, "  - %s\n", f.Name)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}

// writeJSON 输出 JSON
func (r *Reporter) writeJSON(report *Report) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeYAML 输出 YAML
func (r *Reporter) writeYAML(report *Report) error {
	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}

// WriteExtensionTable 列出每个分类及其扩展名
func (r *Reporter) WriteExtensionTable() error {
	var b strings.Builder

	for _, c := range classifier.Categories() {
		exts := classifier.Extensions(c)
		if len(exts) == 0 {
			fmt.Fprintf(&b, "%s\n  %s\n", r.style(categoryStyle, c.String()), r.style(countStyle, "(anything not listed above)"))
			continue
		}
		fmt.Fprintf(&b, "%s\n  %s\n", r.style(categoryStyle, c.String()), strings.Join(exts, ", "))
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}
