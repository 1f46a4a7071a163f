package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color 可以从 YAML 十六进制字符串解析的颜色
//
// 支持的格式：
//   - "#RRGGBB"   不透明
//   - "#AARRGGBB" 透明度在前
type Color color.RGBA

// ParseColor 解析十六进制颜色字符串
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	hex = strings.TrimPrefix(hex, "0x")

	var argb uint64
	var err error
	switch len(hex) {
	case 6:
		argb, err = strconv.ParseUint(hex, 16, 32)
		argb |= 0xFF000000
	case 8:
		argb, err = strconv.ParseUint(hex, 16, 32)
	default:
		return Color{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #AARRGGBB", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}, nil
}

// MustParseColor 解析失败时 panic，仅用于常量初始化
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA 实现 color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// ToRGBA 转换为标准库颜色
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// Hex 返回 #AARRGGBB 格式（不透明时省略 AA）
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
