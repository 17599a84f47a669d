// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	overrideDir string
	initialized bool
)

// errNotInitialized 未调用 Init 时返回
var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何配置加载之前调用
// data 的根目录下应包含 data/ 目录
func Init(data fs.FS) {
	dataFS = data
	overrideDir = ""
	initialized = true
}

// SetOverrideDir 设置磁盘上的覆盖目录（--config 参数）
// 该目录中的同名文件优先于嵌入文件，dir 为空表示不覆盖
func SetOverrideDir(dir string) {
	overrideDir = dir
}

// OverrideDir 返回当前覆盖目录
func OverrideDir() string {
	return overrideDir
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径并检查前缀
// 路径必须以 "data/" 开头
func normalize(p string) (string, error) {
	// embed.FS 使用正斜杠
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = path.Clean(p)

	if !strings.HasPrefix(p, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", p)
	}
	return p, nil
}

// overridePath 返回覆盖目录中的对应文件，不存在时返回空串
func overridePath(p string) string {
	if overrideDir == "" {
		return ""
	}
	candidate := filepath.Join(overrideDir, filepath.FromSlash(strings.TrimPrefix(p, "data/")))
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}

// ResolvePath 返回文件在磁盘上的实际路径
// 仅当覆盖目录中存在该文件时返回 true（用于热重载监视）
func ResolvePath(p string) (string, bool) {
	normalized, err := normalize(p)
	if err != nil {
		return "", false
	}
	if disk := overridePath(normalized); disk != "" {
		return disk, true
	}
	return "", false
}

// Open 打开文件
func Open(p string) (fs.File, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	normalized, err := normalize(p)
	if err != nil {
		return nil, err
	}
	if disk := overridePath(normalized); disk != "" {
		return os.Open(disk)
	}
	return dataFS.Open(normalized)
}

// ReadFile 读取文件内容
// 覆盖目录中存在同名文件时读取磁盘文件
func ReadFile(p string) ([]byte, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	normalized, err := normalize(p)
	if err != nil {
		return nil, err
	}
	if disk := overridePath(normalized); disk != "" {
		return os.ReadFile(disk)
	}
	return fs.ReadFile(dataFS, normalized)
}

// Exists 检查文件是否存在
func Exists(p string) bool {
	file, err := Open(p)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在嵌入文件系统中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	normalized, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, normalized)
}
