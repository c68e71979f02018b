package classifier

// Category 文件分类
type Category int

const (
	categoryNone Category = iota // 零值，用于检测遗漏的映射

	TextFiles
	DocumentFiles
	ImageFiles
	AudioFiles
	VideoFiles
	ArchiveFiles
	ExecutableFiles
	CodeFiles
	WebFiles
	DatabaseFiles
	DiskImages
	FontFiles
	ModelFiles
	ScientificData
	SystemFiles
	GameFiles
	CryptoFiles
	Others

	numCategories
)

var categoryLabels = [numCategories]string{
	TextFiles:       "Text Files",
	DocumentFiles:   "Document Files",
	ImageFiles:      "Image Files",
	AudioFiles:      "Audio Files",
	VideoFiles:      "Video Files",
	ArchiveFiles:    "Archive Files",
	ExecutableFiles: "Executable Files",
	CodeFiles:       "Code Files",
	WebFiles:        "Web Files",
	DatabaseFiles:   "Database Files",
	DiskImages:      "Virtual Machine & Disk Images",
	FontFiles:       "Font Files",
	ModelFiles:      "3D Model Files",
	ScientificData:  "Scientific Data",
	SystemFiles:     "Configuration and System Files",
	GameFiles:       "Game Files",
	CryptoFiles:     "Blockchain & Crypto",
	Others:          "Others",
}

// String 返回分类的显示名称
func (c Category) String() string {
	if !c.Valid() {
		return "Category(invalid)"
	}
	return categoryLabels[c]
}

// Valid 判断是否为已知分类
func (c Category) Valid() bool {
	return c > categoryNone && c < numCategories
}

// Categories 按固定顺序返回所有分类
func Categories() []Category {
	categories := make([]Category, 0, numCategories-1)
	for c := categoryNone + 1; c < numCategories; c++ {
		categories = append(categories, c)
	}
	return categories
}
