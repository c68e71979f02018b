package classifier

// ExtensionID 已识别的扩展名标识，零值为 Unknown
type ExtensionID int

const (
	Unknown ExtensionID = iota

	// 文本
	Txt
	Md
	Rtf
	Log
	JSON
	XML
	Yaml
	Toml
	Ini

	// 文档
	Pdf
	Doc
	Docx
	Xls
	Xlsx
	Ppt
	Pptx
	Odt
	Ods
	Odp

	// 图片
	Jpg
	Png
	Gif
	Bmp
	Tiff
	Webp
	Svg
	Ico
	Psd
	Ai
	Eps
	Raw

	// 音频
	Mp3
	Wav
	Ogg
	Flac
	Aac
	M4a
	Wma
	Amr
	Midi

	// 视频
	Mp4
	Mkv
	Avi
	Mov
	Wmv
	Flv
	Webm
	Mpeg
	M4v

	// 压缩包
	Zip
	Rar
	Tar
	Gz
	Bz2
	SevenZ
	Dmg
	Xz
	Lz
	Cab

	// 可执行文件
	Exe
	Sh
	Bat
	Cmd
	AppImage
	Jar
	Bin
	Run
	Msi
	Elf

	// 源代码
	Rs
	C
	H
	Cpp
	Hpp
	Java
	Js
	Ts
	Py
	Swift
	Go
	Rb
	Pl
	Lua
	Kt
	Dart
	Cs
	Scala
	Hs
	Lisp
	R
	Jl
	Tcl
	Pm

	// Web
	HTML
	CSS
	Jsx
	Tsx
	Php
	Asp
	Aspx

	// 数据库
	SQL
	Sqlite
	Mdb
	Accdb
	JSONDB

	// 虚拟机与磁盘镜像
	Vmdk
	Vdi
	Vhd
	Vhdx
	Qcow2

	// 字体
	Ttf
	Otf
	Woff
	Woff2
	Eot

	// 3D 模型
	Obj
	Fbx
	Stl
	Blend
	Glb
	Gltf
	Ply

	// 科学数据
	Csv
	Mat
	Hdf5
	Nc
	Dcm
	Fits

	// 配置与系统文件
	Conf
	Reg
	Inf
	Sys
	Dll
	Dat
	Db

	// 游戏
	Save
	Pak
	Vpk
	Wad
	Rom
	Iso
	Nso

	// 区块链与加密
	Wallet
	Key
	JSONKey
	Pem
	P12

	numExtensionIDs
)

// extensionNames 每个标识的规范扩展名
var extensionNames = [numExtensionIDs]string{
	Unknown: "unknown",

	Txt: "txt", Md: "md", Rtf: "rtf", Log: "log", JSON: "json", XML: "xml",
	Yaml: "yaml", Toml: "toml", Ini: "ini",

	Pdf: "pdf", Doc: "doc", Docx: "docx", Xls: "xls", Xlsx: "xlsx",
	Ppt: "ppt", Pptx: "pptx", Odt: "odt", Ods: "ods", Odp: "odp",

	Jpg: "jpg", Png: "png", Gif: "gif", Bmp: "bmp", Tiff: "tiff", Webp: "webp",
	Svg: "svg", Ico: "ico", Psd: "psd", Ai: "ai", Eps: "eps", Raw: "raw",

	Mp3: "mp3", Wav: "wav", Ogg: "ogg", Flac: "flac", Aac: "aac", M4a: "m4a",
	Wma: "wma", Amr: "amr", Midi: "midi",

	Mp4: "mp4", Mkv: "mkv", Avi: "avi", Mov: "mov", Wmv: "wmv", Flv: "flv",
	Webm: "webm", Mpeg: "mpeg", M4v: "m4v",

	Zip: "zip", Rar: "rar", Tar: "tar", Gz: "gz", Bz2: "bz2", SevenZ: "7z",
	Dmg: "dmg", Xz: "xz", Lz: "lz", Cab: "cab",

	Exe: "exe", Sh: "sh", Bat: "bat", Cmd: "cmd", AppImage: "appimage",
	Jar: "jar", Bin: "bin", Run: "run", Msi: "msi", Elf: "elf",

	Rs: "rs", C: "c", H: "h", Cpp: "cpp", Hpp: "hpp", Java: "java", Js: "js",
	Ts: "ts", Py: "py", Swift: "swift", Go: "go", Rb: "rb", Pl: "pl",
	Lua: "lua", Kt: "kt", Dart: "dart", Cs: "cs", Scala: "scala", Hs: "hs",
	Lisp: "lisp", R: "r", Jl: "jl", Tcl: "tcl", Pm: "pm",

	HTML: "html", CSS: "css", Jsx: "jsx", Tsx: "tsx", Php: "php", Asp: "asp",
	Aspx: "aspx",

	SQL: "sql", Sqlite: "sqlite", Mdb: "mdb", Accdb: "accdb", JSONDB: "jsondb",

	Vmdk: "vmdk", Vdi: "vdi", Vhd: "vhd", Vhdx: "vhdx", Qcow2: "qcow2",

	Ttf: "ttf", Otf: "otf", Woff: "woff", Woff2: "woff2", Eot: "eot",

	Obj: "obj", Fbx: "fbx", Stl: "stl", Blend: "blend", Glb: "glb",
	Gltf: "gltf", Ply: "ply",

	Csv: "csv", Mat: "mat", Hdf5: "hdf5", Nc: "nc", Dcm: "dcm", Fits: "fits",

	Conf: "conf", Reg: "reg", Inf: "inf", Sys: "sys", Dll: "dll", Dat: "dat",
	Db: "db",

	Save: "save", Pak: "pak", Vpk: "vpk", Wad: "wad", Rom: "rom", Iso: "iso",
	Nso: "nso",

	Wallet: "wallet", Key: "key", JSONKey: "jsonkey", Pem: "pem", P12: "p12",
}

// extensionAliases 别名，映射到已有标识
var extensionAliases = map[string]ExtensionID{
	"markdown": Md,
	"yml":      Yaml,
	"jpeg":     Jpg,
	"tif":      Tiff,
	"mid":      Midi,
	"mpg":      Mpeg,
	"kts":      Kt,
	"htm":      HTML,
	"h5":       Hdf5,
}

// categoryByID 标识到分类的映射，数组长度与枚举一致，缺项在 init 中检测
var categoryByID = [numExtensionIDs]Category{
	Unknown: Others,

	Txt: TextFiles, Md: TextFiles, Rtf: TextFiles, Log: TextFiles,
	JSON: TextFiles, XML: TextFiles, Yaml: TextFiles, Toml: TextFiles,
	Ini: TextFiles,

	Pdf: DocumentFiles, Doc: DocumentFiles, Docx: DocumentFiles,
	Xls: DocumentFiles, Xlsx: DocumentFiles, Ppt: DocumentFiles,
	Pptx: DocumentFiles, Odt: DocumentFiles, Ods: DocumentFiles,
	Odp: DocumentFiles,

	Jpg: ImageFiles, Png: ImageFiles, Gif: ImageFiles, Bmp: ImageFiles,
	Tiff: ImageFiles, Webp: ImageFiles, Svg: ImageFiles, Ico: ImageFiles,
	Psd: ImageFiles, Ai: ImageFiles, Eps: ImageFiles, Raw: ImageFiles,

	Mp3: AudioFiles, Wav: AudioFiles, Ogg: AudioFiles, Flac: AudioFiles,
	Aac: AudioFiles, M4a: AudioFiles, Wma: AudioFiles, Amr: AudioFiles,
	Midi: AudioFiles,

	Mp4: VideoFiles, Mkv: VideoFiles, Avi: VideoFiles, Mov: VideoFiles,
	Wmv: VideoFiles, Flv: VideoFiles, Webm: VideoFiles, Mpeg: VideoFiles,
	M4v: VideoFiles,

	Zip: ArchiveFiles, Rar: ArchiveFiles, Tar: ArchiveFiles, Gz: ArchiveFiles,
	Bz2: ArchiveFiles, SevenZ: ArchiveFiles, Dmg: ArchiveFiles,
	Xz: ArchiveFiles, Lz: ArchiveFiles, Cab: ArchiveFiles,

	Exe: ExecutableFiles, Sh: ExecutableFiles, Bat: ExecutableFiles,
	Cmd: ExecutableFiles, AppImage: ExecutableFiles, Jar: ExecutableFiles,
	Bin: ExecutableFiles, Run: ExecutableFiles, Msi: ExecutableFiles,
	Elf: ExecutableFiles,

	Rs: CodeFiles, C: CodeFiles, H: CodeFiles, Cpp: CodeFiles, Hpp: CodeFiles,
	Java: CodeFiles, Js: CodeFiles, Ts: CodeFiles, Py: CodeFiles,
	Swift: CodeFiles, Go: CodeFiles, Rb: CodeFiles, Pl: CodeFiles,
	Lua: CodeFiles, Kt: CodeFiles, Dart: CodeFiles, Cs: CodeFiles,
	Scala: CodeFiles, Hs: CodeFiles, Lisp: CodeFiles, R: CodeFiles,
	Jl: CodeFiles, Tcl: CodeFiles, Pm: CodeFiles,

	HTML: WebFiles, CSS: WebFiles, Jsx: WebFiles, Tsx: WebFiles,
	Php: WebFiles, Asp: WebFiles, Aspx: WebFiles,

	SQL: DatabaseFiles, Sqlite: DatabaseFiles, Mdb: DatabaseFiles,
	Accdb: DatabaseFiles, JSONDB: DatabaseFiles,

	Vmdk: DiskImages, Vdi: DiskImages, Vhd: DiskImages, Vhdx: DiskImages,
	Qcow2: DiskImages,

	Ttf: FontFiles, Otf: FontFiles, Woff: FontFiles, Woff2: FontFiles,
	Eot: FontFiles,

	Obj: ModelFiles, Fbx: ModelFiles, Stl: ModelFiles, Blend: ModelFiles,
	Glb: ModelFiles, Gltf: ModelFiles, Ply: ModelFiles,

	Csv: ScientificData, Mat: ScientificData, Hdf5: ScientificData,
	Nc: ScientificData, Dcm: ScientificData, Fits: ScientificData,

	Conf: SystemFiles, Reg: SystemFiles, Inf: SystemFiles, Sys: SystemFiles,
	Dll: SystemFiles, Dat: SystemFiles, Db: SystemFiles,

	Save: GameFiles, Pak: GameFiles, Vpk: GameFiles, Wad: GameFiles,
	Rom: GameFiles, Iso: GameFiles, Nso: GameFiles,

	Wallet: CryptoFiles, Key: CryptoFiles, JSONKey: CryptoFiles,
	Pem: CryptoFiles, P12: CryptoFiles,
}

// String 返回规范扩展名
func (id ExtensionID) String() string {
	if id < Unknown || id >= numExtensionIDs {
		return extensionNames[Unknown]
	}
	return extensionNames[id]
}

// ExtensionIDs 返回全部标识（含 Unknown）
func ExtensionIDs() []ExtensionID {
	ids := make([]ExtensionID, 0, numExtensionIDs)
	for id := Unknown; id < numExtensionIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}
