package config

import (
	"fmt"
	"os"
	"time"

	"github.com/decker502/circlemenu/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 圆形菜单的固定常量
//
// 这些值与菜单的几何布局和层级强相关，不开放给 YAML 调整。
const (
	// MaxMenuItems 菜单最多容纳的条目数
	MaxMenuItems = 7

	// MaxItemsPerRow 每一行（圆弧）最多容纳的条目数
	MaxItemsPerRow = 4

	// MaxMenuButtonSize 触发按钮的最大边长（像素）
	MaxMenuButtonSize = 160

	// CircleQuadrantOffsetDeg 所有角度统一加上的象限偏移
	// 按钮位于屏幕右下角，只有第 II 象限（左上方）在屏幕内可见
	CircleQuadrantOffsetDeg = 180.0

	// MaxQuadrantDeg 一行可用的最大角度（四分之一圆）
	MaxQuadrantDeg = 90.0

	// DecreasePerRowDeg 每一行相对上一行减少的可用角度
	DecreasePerRowDeg = 12.0

	// RowSpacingFactor 相邻两行之间的半径间距（条目尺寸的倍数）
	RowSpacingFactor = 1.5
)

// Z 轴层级：按钮 > 条目 > 背景面板
const (
	ZIndexMenuButton  = 10
	ZIndexMenuItem    = 7
	ZIndexMenuWrapper = 5
)

// SpringSpec 弹簧动画参数
// Stiffness 按单位质量计，DampingRatio=1 为临界阻尼
type SpringSpec struct {
	DampingRatio float64 `yaml:"dampingRatio"`
	Stiffness    float64 `yaml:"stiffness"`
}

// CircleMenuConfig 圆形菜单的可调参数
//
// 默认值见 DefaultCircleMenuConfig，data/circle_menu.yaml 可以覆盖其中任意字段。
type CircleMenuConfig struct {
	// ItemSize 单个条目占用的正方形边长（像素）
	ItemSize int `yaml:"itemSize"`
	// ShapeRatio 圆形菜单直径相对容器宽度的倍数
	ShapeRatio float64 `yaml:"shapeRatio"`
	// ButtonRotationDeg 菜单打开时按钮图标的旋转角度
	ButtonRotationDeg float64 `yaml:"buttonRotationDeg"`
	// CollapseRatio 关闭状态下条目向圆心收拢的比例（0 = 不移动，1 = 收拢到圆心）
	CollapseRatio float64 `yaml:"collapseRatio"`

	MenuBackgroundColor Color `yaml:"menuBackgroundColor"`
	ButtonClosedColor   Color `yaml:"buttonClosedColor"`
	ButtonOpenColor     Color `yaml:"buttonOpenColor"`
	ItemTitleColor      Color `yaml:"itemTitleColor"`

	// StaggerPerItemMs 打开时每个条目额外等待的毫秒数（第 i 个条目等待 (i+1) 倍）
	StaggerPerItemMs int `yaml:"staggerPerItemMs"`
	// PanelTweenMs 背景面板透明度/缩放补间时长
	PanelTweenMs int `yaml:"panelTweenMs"`

	ItemSpring     SpringSpec `yaml:"itemSpring"`
	RotationSpring SpringSpec `yaml:"rotationSpring"`
	ColorSpring    SpringSpec `yaml:"colorSpring"`
}

// DefaultCircleMenuConfig 返回默认的菜单参数
func DefaultCircleMenuConfig() *CircleMenuConfig {
	return &CircleMenuConfig{
		ItemSize:            150,
		ShapeRatio:          1.75,
		ButtonRotationDeg:   135,
		CollapseRatio:       0.4,
		MenuBackgroundColor: MustParseColor("#353E59"),
		ButtonClosedColor:   MustParseColor("#487EFA"),
		ButtonOpenColor:     MustParseColor("#3B445B"),
		ItemTitleColor:      MustParseColor("#A6AABD"),
		StaggerPerItemMs:    15,
		PanelTweenMs:        500,
		ItemSpring:          SpringSpec{DampingRatio: 0.8, Stiffness: 100},
		// 低刚度，无回弹
		RotationSpring: SpringSpec{DampingRatio: 1.0, Stiffness: 200},
		// 颜色过渡不回弹
		ColorSpring: SpringSpec{DampingRatio: 1.0, Stiffness: 400},
	}
}

// StaggerDelay 返回第 index 个条目在打开时的延迟
func (c *CircleMenuConfig) StaggerDelay(index int) time.Duration {
	return time.Duration(index+1) * time.Duration(c.StaggerPerItemMs) * time.Millisecond
}

// PanelTweenDuration 返回背景面板补间时长
func (c *CircleMenuConfig) PanelTweenDuration() time.Duration {
	return time.Duration(c.PanelTweenMs) * time.Millisecond
}

// LoadCircleMenuConfig 从 YAML 文件加载菜单参数
// 未出现在文件中的字段保留默认值
func LoadCircleMenuConfig(filePath string) (*CircleMenuConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read circle menu config: %w", err)
	}
	return ParseCircleMenuConfig(data)
}

// ParseCircleMenuConfig 解析 YAML 格式的菜单参数并校验
func ParseCircleMenuConfig(data []byte) (*CircleMenuConfig, error) {
	cfg := DefaultCircleMenuConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse circle menu YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circle menu config: %w", err)
	}
	return cfg, nil
}

// Validate 校验参数取值范围
func (c *CircleMenuConfig) Validate() error {
	if c.ItemSize <= 0 {
		return fmt.Errorf("itemSize must be positive, got %d", c.ItemSize)
	}
	if c.ShapeRatio < 1 {
		return fmt.Errorf("shapeRatio must be >= 1, got %v", c.ShapeRatio)
	}
	if c.CollapseRatio < 0 || c.CollapseRatio > 1 {
		return fmt.Errorf("collapseRatio must be between 0 and 1, got %v", c.CollapseRatio)
	}
	if c.StaggerPerItemMs < 0 {
		return fmt.Errorf("staggerPerItemMs cannot be negative, got %d", c.StaggerPerItemMs)
	}
	if c.PanelTweenMs <= 0 {
		return fmt.Errorf("panelTweenMs must be positive, got %d", c.PanelTweenMs)
	}
	for name, s := range map[string]SpringSpec{
		"itemSpring":     c.ItemSpring,
		"rotationSpring": c.RotationSpring,
		"colorSpring":    c.ColorSpring,
	} {
		if s.Stiffness <= 0 {
			return fmt.Errorf("%s.stiffness must be positive, got %v", name, s.Stiffness)
		}
		if s.DampingRatio <= 0 {
			return fmt.Errorf("%s.dampingRatio must be positive, got %v", name, s.DampingRatio)
		}
	}
	return nil
}

// readConfigFile 优先从嵌入资源读取，未初始化或不存在时回退到文件系统
func readConfigFile(filePath string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(filePath) {
		return embedded.ReadFile(filePath)
	}
	return os.ReadFile(filePath)
}
