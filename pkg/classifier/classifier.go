package classifier

import (
	"fmt"
	"sort"
	"strings"
)

// extensionTable 小写扩展名到标识的查找表，init 中由规范名与别名构建
var extensionTable map[string]ExtensionID

func init() {
	extensionTable = make(map[string]ExtensionID, int(numExtensionIDs)+len(extensionAliases))

	for id := Unknown + 1; id < numExtensionIDs; id++ {
		name := extensionNames[id]
		if name == "" {
			panic(fmt.Sprintf("classifier: extension id %d has no name", id))
		}
		if prev, ok := extensionTable[name]; ok {
			panic(fmt.Sprintf("classifier: extension %q bound to both %d and %d", name, prev, id))
		}
		extensionTable[name] = id
	}

	for alias, id := range extensionAliases {
		if _, ok := extensionTable[alias]; ok {
			panic(fmt.Sprintf("classifier: alias %q shadows a canonical extension", alias))
		}
		extensionTable[alias] = id
	}

	for id := Unknown; id < numExtensionIDs; id++ {
		if !categoryByID[id].Valid() {
			panic(fmt.Sprintf("classifier: extension %q has no category", extensionNames[id]))
		}
	}
}

// Classify 将扩展名（不含点，大小写不敏感）映射为标识
// 未收录的扩展名返回 Unknown
func Classify(ext string) ExtensionID {
	if id, ok := extensionTable[strings.ToLower(ext)]; ok {
		return id
	}
	return Unknown
}

// CategoryOf 返回标识所属的分类，越界标识归入 Others
func CategoryOf(id ExtensionID) Category {
	if id < Unknown || id >= numExtensionIDs {
		return Others
	}
	return categoryByID[id]
}

// ExtractExtension 取文件名最后一个点之后的部分
// 没有点、只有开头的点（如 .gitignore）或点在末尾时返回 false
func ExtractExtension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}
	return name[idx+1:], true
}

// Extensions 返回映射到指定分类的所有扩展名（含别名），按字母排序
func Extensions(c Category) []string {
	var exts []string
	for ext, id := range extensionTable {
		if categoryByID[id] == c {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
