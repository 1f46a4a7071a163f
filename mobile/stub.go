//go:build !mobile

// stub.go - 普通构建时的占位文件
//
// mobile.go 和 embed.go 只在 -tags mobile 时编译，
// 这里保证 ./... 在桌面端也能正常构建。
package mobile

// Dummy 与 mobile.go 中的同名函数保持一致
func Dummy() {}
