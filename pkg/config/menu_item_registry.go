package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MenuItemSpec 菜单条目描述（只读）
// 列表顺序即显示顺序，也是在圆弧上的角度顺序
type MenuItemSpec struct {
	Title string `yaml:"title"`
	Color Color  `yaml:"color"`
	// Icon 图标引用，由渲染层解释（见 utils.DrawIcon）
	Icon string `yaml:"icon"`
}

// menuItemRegistryFile YAML 文件的顶层结构
type menuItemRegistryFile struct {
	Items []MenuItemSpec `yaml:"items"`
}

// DefaultMenuItemSpecs 内置的条目目录
var DefaultMenuItemSpecs = []MenuItemSpec{
	{Title: "Voice", Color: MustParseColor("#DFE5FF"), Icon: "voice"},
	{Title: "Notes", Color: MustParseColor("#D0E8EB"), Icon: "notes"},
	{Title: "Link", Color: MustParseColor("#A0DFBB"), Icon: "link"},
	{Title: "Template", Color: MustParseColor("#FFDFDA"), Icon: "template"},
	{Title: "Notes", Color: MustParseColor("#8DC0F8"), Icon: "notes"},
	{Title: "Scan", Color: MustParseColor("#FEEFD8"), Icon: "scan"},
	{Title: "Upload", Color: MustParseColor("#FF9770"), Icon: "upload"},
}

// MenuItemRegistry 按位置索引的条目目录
type MenuItemRegistry struct {
	specs []MenuItemSpec
}

// NewMenuItemRegistry 创建条目目录，超过 MaxMenuItems 时返回错误
func NewMenuItemRegistry(specs []MenuItemSpec) (*MenuItemRegistry, error) {
	if len(specs) > MaxMenuItems {
		return nil, fmt.Errorf("menu item registry has %d items, max is %d", len(specs), MaxMenuItems)
	}
	for i, s := range specs {
		if s.Title == "" {
			return nil, fmt.Errorf("menu item %d: title cannot be empty", i)
		}
	}
	copied := make([]MenuItemSpec, len(specs))
	copy(copied, specs)
	return &MenuItemRegistry{specs: copied}, nil
}

// DefaultMenuItemRegistry 返回内置目录
func DefaultMenuItemRegistry() *MenuItemRegistry {
	r, _ := NewMenuItemRegistry(DefaultMenuItemSpecs)
	return r
}

// LoadMenuItemRegistry 从 YAML 文件加载条目目录
func LoadMenuItemRegistry(filePath string) (*MenuItemRegistry, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu items file: %w", err)
	}

	var file menuItemRegistryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse menu items YAML: %w", err)
	}

	return NewMenuItemRegistry(file.Items)
}

// Len 条目数量
func (r *MenuItemRegistry) Len() int {
	return len(r.specs)
}

// Get 按索引获取条目
func (r *MenuItemRegistry) Get(index int) (MenuItemSpec, bool) {
	if index < 0 || index >= len(r.specs) {
		return MenuItemSpec{}, false
	}
	return r.specs[index], true
}

// Specs 返回条目副本
func (r *MenuItemRegistry) Specs() []MenuItemSpec {
	out := make([]MenuItemSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Take 返回前 n 个条目组成的新目录（n 超出范围时截断）
func (r *MenuItemRegistry) Take(n int) *MenuItemRegistry {
	if n < 0 {
		n = 0
	}
	if n > len(r.specs) {
		n = len(r.specs)
	}
	return &MenuItemRegistry{specs: r.Specs()[:n]}
}
