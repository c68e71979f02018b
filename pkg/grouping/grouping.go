package grouping

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/moyu-x/file-sorter/internal"
	"github.com/moyu-x/file-sorter/pkg/classifier"
	"github.com/moyu-x/file-sorter/pkg/logger"
)

// Grouping 分类到文件列表的映射，每个分类保持插入顺序
type Grouping struct {
	files map[classifier.Category][]internal.FileEntry
}

// Summary 分组统计，只计入非空分类
type Summary struct {
	TotalFiles int
	Categories int
}

// New 创建分组，所有已知分类预先存在（为空）
func New() *Grouping {
	g := &Grouping{files: make(map[classifier.Category][]internal.FileEntry)}
	for _, c := range classifier.Categories() {
		g.files[c] = []internal.FileEntry{}
	}
	return g
}

func (g *Grouping) add(c classifier.Category, e internal.FileEntry) {
	g.files[c] = append(g.files[c], e)
}

// Files 返回分类中文件的副本，修改副本不影响分组
func (g *Grouping) Files(c classifier.Category) []internal.FileEntry {
	return slices.Clone(g.files[c])
}

// Has 判断分类是否存在于分组中（可能为空）
func (g *Grouping) Has(c classifier.Category) bool {
	_, ok := g.files[c]
	return ok
}

// Categories 按固定顺序返回所有分类
func (g *Grouping) Categories() []classifier.Category {
	return classifier.Categories()
}

// NonEmpty 按固定顺序返回有文件的分类
func (g *Grouping) NonEmpty() []classifier.Category {
	var categories []classifier.Category
	for _, c := range classifier.Categories() {
		if len(g.files[c]) > 0 {
			categories = append(categories, c)
		}
	}
	return categories
}

// Summarize 统计文件总数和非空分类数
func (g *Grouping) Summarize() Summary {
	var s Summary
	for _, c := range g.NonEmpty() {
		s.TotalFiles += len(g.files[c])
		s.Categories++
	}
	return s
}

// Fingerprint 对分组成员计算 xxHash，相同输入得到相同结果
func (g *Grouping) Fingerprint() uint64 {
	h := xxhash.New()
	for _, c := range classifier.Categories() {
		files := g.files[c]
		if len(files) == 0 {
			continue
		}
		_, _ = h.WriteString(c.String())
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(strconv.Itoa(len(files)))
		for _, f := range files {
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(f.Name)
		}
		_, _ = h.WriteString("\x01")
	}
	return h.Sum64()
}

// Engine 分组引擎
type Engine struct {
	Classify func(ext string) classifier.ExtensionID
}

func NewEngine() *Engine {
	return &Engine{Classify: classifier.Classify}
}

// Group 使用默认引擎分组
func Group(entries []internal.FileEntry) *Grouping {
	return NewEngine().Group(entries)
}

// Group 按给定顺序遍历条目并分组
// 读取失败的条目和非普通文件被跳过，没有扩展名的文件直接归入 Others
func (e *Engine) Group(entries []internal.FileEntry) *Grouping {
	g := New()
	classify := e.Classify
	if classify == nil {
		classify = classifier.Classify
	}

	skipped := 0
	for _, entry := range entries {
		if entry.Err != nil {
			logger.Get().Debug().Err(entry.Err).Str("path", entry.Path).Msg("跳过无法读取的条目")
			skipped++
			continue
		}

		if !entry.Regular {
			continue
		}

		ext, ok := classifier.ExtractExtension(entry.Name)
		if !ok {
			g.add(classifier.Others, entry)
			continue
		}

		category := classifier.CategoryOf(classify(ext))
		g.add(category, entry)
		logger.Get().Trace().Str("file", entry.Name).Str("category", category.String()).Msg("已分类")
	}

	if ev := logger.Get().Debug(); ev.Enabled() {
		ev.Int("entries", len(entries)).
			Int("skipped", skipped).
			Str("fingerprint", strconv.FormatUint(g.Fingerprint(), 16)).
			Msg("分组完成")
	}

	return g
}
