package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/game"
	"github.com/decker502/circlemenu/pkg/modules"
	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 演示场景的文字颜色
var (
	headerColor = color.RGBA{R: 0x35, G: 0x3E, B: 0x59, A: 0xFF}
	hintColor   = color.RGBA{R: 0x8A, G: 0x90, B: 0xA6, A: 0xFF}
)

// itemSizeStep +/- 键每次调整的条目边长
const itemSizeStep = 10

// MenuDemoOptions 演示场景参数
type MenuDemoOptions struct {
	// Config 菜单参数（nil 使用默认值）
	Config *config.CircleMenuConfig
	// Registry 条目目录（nil 使用默认目录）
	Registry *config.MenuItemRegistry
	// ItemCount 显示的条目数；超过目录长度时循环使用目录中的条目
	ItemCount int
	// Width, Height 初始逻辑屏幕尺寸
	Width, Height int
	// DebugLayout 初始是否显示布局调试覆盖层
	DebugLayout bool
	// Input 输入来源（nil 读取鼠标/触摸）
	Input utils.InputSource
	// OnDebugLayoutChanged 调试覆盖层开关变化时调用（用于持久化设置）
	OnDebugLayoutChanged func(enabled bool)
	// OnItemSizeChanged 条目边长变化时调用（用于持久化设置）
	OnItemSizeChanged func(size int)
}

// MenuDemoScene 白色背景上的圆形菜单演示
//
// 右下角为触发按钮，点击条目会记录选中的标题并关闭菜单。
// 按 D 键切换布局调试覆盖层，+/- 键调整条目边长。
type MenuDemoScene struct {
	entityManager *ecs.EntityManager
	menu          *modules.CircleMenuModule
	config        *config.CircleMenuConfig
	specs         []config.MenuItemSpec

	debugLayout          bool
	onDebugLayoutChanged func(bool)
	onItemSizeChanged    func(int)

	lastSelected string
}

// NewMenuDemoScene 创建演示场景
//
// 返回：
//   - 场景实例
//   - 错误信息（条目数超过上限时为 *layout.TooManyItemsError）
func NewMenuDemoScene(opts MenuDemoOptions) (*MenuDemoScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultCircleMenuConfig()
	}
	registry := opts.Registry
	if registry == nil {
		registry = config.DefaultMenuItemRegistry()
	}

	s := &MenuDemoScene{
		entityManager:        ecs.NewEntityManager(),
		config:               cfg,
		specs:                cycleSpecs(registry.Specs(), opts.ItemCount),
		debugLayout:          opts.DebugLayout,
		onDebugLayoutChanged: opts.OnDebugLayoutChanged,
		onItemSizeChanged:    opts.OnItemSizeChanged,
	}

	menu, err := modules.NewCircleMenuModule(s.entityManager, cfg, opts.Width, opts.Height, s.menuContent, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to create circle menu: %w", err)
	}
	menu.SetDebugLayout(s.debugLayout)
	s.menu = menu

	log.Printf("[MenuDemoScene] 创建完成: %d 个条目", len(s.specs))
	return s, nil
}

// cycleSpecs 取 n 个条目，目录不够时从头循环
func cycleSpecs(specs []config.MenuItemSpec, n int) []config.MenuItemSpec {
	if n <= 0 || len(specs) == 0 {
		return nil
	}
	out := make([]config.MenuItemSpec, n)
	for i := range out {
		out[i] = specs[i%len(specs)]
	}
	return out
}

// menuContent 条目提供函数：每次状态变化时生成新的视图
func (s *MenuDemoScene) menuContent(isOpen bool, setOpen func(bool)) []components.MenuItemRenderable {
	items := make([]components.MenuItemRenderable, 0, len(s.specs))
	for _, spec := range s.specs {
		items = append(items, NewMenuItemView(spec, s.config.ItemTitleColor, func(selected config.MenuItemSpec) {
			s.lastSelected = selected.Title
			setOpen(false)
		}))
	}
	return items
}

// Menu 返回菜单模块
func (s *MenuDemoScene) Menu() *modules.CircleMenuModule {
	return s.menu
}

// LastSelected 最近一次选中的条目标题
func (s *MenuDemoScene) LastSelected() string {
	return s.lastSelected
}

// SetDebugLayout 切换布局调试覆盖层
func (s *MenuDemoScene) SetDebugLayout(enabled bool) {
	if s.debugLayout == enabled {
		return
	}
	s.debugLayout = enabled
	s.menu.SetDebugLayout(enabled)
	if s.onDebugLayoutChanged != nil {
		s.onDebugLayoutChanged(enabled)
	}
}

// SetItemSize 修改条目边长，限制在 [game.MinItemSize, game.MaxItemSize]
// 边长实际变化时重新布局菜单并通知回调
func (s *MenuDemoScene) SetItemSize(size int) error {
	size = max(game.MinItemSize, min(game.MaxItemSize, size))
	if size == s.config.ItemSize {
		return nil
	}
	if err := s.menu.SetItemSize(size); err != nil {
		return err
	}
	if s.onItemSizeChanged != nil {
		s.onItemSizeChanged(size)
	}
	return nil
}

// stepItemSize 按 itemSizeStep 的倍数调整条目边长
func (s *MenuDemoScene) stepItemSize(steps int) {
	if err := s.SetItemSize(s.config.ItemSize + steps*itemSizeStep); err != nil {
		log.Printf("[MenuDemoScene] 调整条目边长失败: %v", err)
	}
}

// Resize 逻辑屏幕尺寸变化时重新布局菜单
func (s *MenuDemoScene) Resize(width, height int) {
	if err := s.menu.Resize(width, height); err != nil {
		log.Printf("[MenuDemoScene] 重新布局失败: %v", err)
	}
}

// Update 更新场景
func (s *MenuDemoScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.SetDebugLayout(!s.debugLayout)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		s.stepItemSize(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		s.stepItemSize(-1)
	}
	s.menu.Update(deltaTime)
}

// Draw 绘制场景
func (s *MenuDemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	s.drawText(screen, "Circle Menu", 48, 48, 4, headerColor)
	hint := "Tap the button to open the menu"
	if s.lastSelected != "" {
		hint = "Selected: " + s.lastSelected
	}
	s.drawText(screen, hint, 48, 120, 2.5, hintColor)

	s.menu.Draw(screen)
}

func (s *MenuDemoScene) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, labelFace, op)
}
