//go:build !android

package utils

// EnsureStorageDir 非 Android 平台上 gdata 会自行创建目录
func EnsureStorageDir(appName string) error {
	return nil
}

// GetStoragePath 非 Android 平台返回空字符串
func GetStoragePath(appName string) string {
	return ""
}
