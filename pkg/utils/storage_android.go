//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// androidDataRoot 应用私有数据目录的根
const androidDataRoot = "/data/data"

// EnsureStorageDir 在 gdata 打开之前准备 Android 上的数据目录
//
// gdata 在 Android 上以 /data/data/{package}/ 为根目录，但不会创建
// appName 子目录；目录不可写时设置无法保存。
func EnsureStorageDir(appName string) error {
	dir, err := storageDir(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// GetStoragePath 返回 appName 的数据目录（用于调试日志），检测失败时返回空字符串
func GetStoragePath(appName string) string {
	dir, err := storageDir(appName)
	if err != nil {
		return ""
	}
	return dir
}

func storageDir(appName string) (string, error) {
	pkg, err := androidPackageName()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}
	return filepath.Join(androidDataRoot, pkg, appName), nil
}

// androidPackageName 进程名即包名，取 /proc/self/cmdline 的第一个参数
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name, _, _ := strings.Cut(string(data), "\x00")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
