package modules

import (
	"fmt"
	"log"

	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/entities"
	"github.com/decker502/circlemenu/pkg/game"
	"github.com/decker502/circlemenu/pkg/layout"
	"github.com/decker502/circlemenu/pkg/systems"
	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuContentFunc 条目提供函数
//
// 每次可见状态变化时重新调用，isOpen 为新状态，setOpen 可以在条目的点击回调中使用
// （例如选中条目后关闭菜单）。最多返回 config.MaxMenuItems 个条目。
type MenuContentFunc func(isOpen bool, setOpen func(bool)) []components.MenuItemRenderable

// CircleMenuModule 圆形弹出菜单模块
// 封装菜单的全部功能：
//   - 触发按钮、背景面板与条目实体的创建和管理
//   - 打开/关闭状态机（VisibilityState）
//   - 径向布局、开关动画、点击处理与绘制
//
// 使用方式：
//
//	menu, err := modules.NewCircleMenuModule(em, cfg, w, h, content, nil)
//	// Update 中
//	menu.Update(dt)
//	// Draw 中
//	menu.Draw(screen)
//
// 条目过多（> 7）是集成错误：构造函数和 SetOpen/Resize 会同步返回
// *layout.TooManyItemsError，已有的条目与布局保持不变。
type CircleMenuModule struct {
	// ECS 框架
	entityManager *ecs.EntityManager
	config        *config.CircleMenuConfig

	// 状态
	visibility  *game.VisibilityState
	unsubscribe func()
	content     MenuContentFunc

	// 实体
	buttonEntity  ecs.EntityID
	wrapperEntity ecs.EntityID
	itemEntities  []ecs.EntityID

	// 系统
	layoutSystem    *systems.CircleMenuLayoutSystem
	animationSystem *systems.CircleMenuAnimationSystem
	inputSystem     *systems.CircleMenuInputSystem
	renderSystem    *systems.CircleMenuRenderSystem

	// 容器尺寸（最近一次请求）
	width, height int

	// lastErr 最近一次条目刷新或布局的错误
	lastErr error
}

// NewCircleMenuModule 创建圆形菜单模块
//
// 参数：
//   - em: 实体管理器
//   - cfg: 菜单参数（nil 时使用默认值）
//   - width, height: 容器尺寸（逻辑像素）
//   - content: 条目提供函数（nil 表示没有条目）
//   - input: 输入来源（nil 时读取鼠标/触摸）
//
// 返回：
//   - 模块实例
//   - 错误信息（条目超过上限或参数无效）
func NewCircleMenuModule(
	em *ecs.EntityManager,
	cfg *config.CircleMenuConfig,
	width, height int,
	content MenuContentFunc,
	input utils.InputSource,
) (*CircleMenuModule, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager is required")
	}
	if cfg == nil {
		cfg = config.DefaultCircleMenuConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circle menu config: %w", err)
	}
	if content == nil {
		content = func(bool, func(bool)) []components.MenuItemRenderable { return nil }
	}

	m := &CircleMenuModule{
		entityManager: em,
		config:        cfg,
		visibility:    game.NewVisibilityState(),
		content:       content,
		width:         width,
		height:        height,
	}

	// 初始为关闭状态
	m.buttonEntity = entities.NewTriggerButton(em, cfg, false)
	m.wrapperEntity = entities.NewMenuWrapper(em, cfg, false)

	m.layoutSystem = systems.NewCircleMenuLayoutSystem(em, cfg, m.buttonEntity, m.wrapperEntity)
	m.animationSystem = systems.NewCircleMenuAnimationSystem(em, cfg, nil, m.buttonEntity, m.wrapperEntity, false)
	m.inputSystem = systems.NewCircleMenuInputSystem(
		em, input, m.buttonEntity, m.wrapperEntity, float64(cfg.ItemSize),
		m.IsOpen, m.toggleFromInput,
	)
	m.renderSystem = systems.NewCircleMenuRenderSystem(em, m.buttonEntity, m.wrapperEntity, float64(cfg.ItemSize))

	if err := m.refreshItems(false); err != nil {
		m.destroyAll()
		return nil, err
	}
	if err := m.layoutSystem.Relayout(width, height); err != nil {
		m.destroyAll()
		return nil, err
	}

	m.unsubscribe = m.visibility.Subscribe(m.onVisibilityChanged)

	log.Printf("[CircleMenuModule] 创建完成: %dx%d, 条目=%d", width, height, len(m.itemEntities))
	return m, nil
}

// IsOpen 菜单当前是否打开
func (m *CircleMenuModule) IsOpen() bool {
	return m.visibility.IsOpen()
}

// SetOpen 设置菜单状态
// 条目提供函数返回过多条目时返回错误，状态仍然切换，条目保持上一次的结果
func (m *CircleMenuModule) SetOpen(open bool) error {
	m.lastErr = nil
	m.visibility.Set(open)
	return m.lastErr
}

// Toggle 翻转菜单状态
func (m *CircleMenuModule) Toggle() error {
	return m.SetOpen(!m.IsOpen())
}

// Resize 容器尺寸变化时重新布局
func (m *CircleMenuModule) Resize(width, height int) error {
	if width == m.width && height == m.height {
		return nil
	}
	m.width, m.height = width, height
	if err := m.layoutSystem.Relayout(width, height); err != nil {
		m.lastErr = err
		return err
	}
	return nil
}

// SetItemSize 修改条目边长并重新布局
//
// 布局目标、绘制尺寸和点击区域同时使用新值。边长无效时返回错误，原有布局不变。
func (m *CircleMenuModule) SetItemSize(size int) error {
	if size == m.config.ItemSize {
		return nil
	}
	next := *m.config
	next.ItemSize = size
	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid item size: %w", err)
	}

	prev := m.config.ItemSize
	m.config.ItemSize = size
	if err := m.layoutSystem.Relayout(m.width, m.height); err != nil {
		m.config.ItemSize = prev
		m.lastErr = err
		return err
	}
	m.renderSystem.SetItemSize(float64(size))
	m.inputSystem.SetItemSize(float64(size))

	log.Printf("[CircleMenuModule] 条目边长 %d -> %d", prev, size)
	return nil
}

// Update 更新菜单（deltaTime 单位为秒）
func (m *CircleMenuModule) Update(deltaTime float64) {
	m.inputSystem.Update(deltaTime)
	m.animationSystem.Update(deltaTime)
}

// Draw 绘制菜单
func (m *CircleMenuModule) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen)
}

// Frame 当前帧的几何快照
func (m *CircleMenuModule) Frame() systems.MenuFrame {
	return m.renderSystem.Frame()
}

// HandlePress 处理一次点击，返回是否被菜单消费
func (m *CircleMenuModule) HandlePress(x, y float64) bool {
	return m.inputSystem.HandlePress(x, y)
}

// IsSettled 所有动画是否都已停止
func (m *CircleMenuModule) IsSettled() bool {
	return m.animationSystem.IsSettled()
}

// ItemCount 当前条目数
func (m *CircleMenuModule) ItemCount() int {
	return len(m.itemEntities)
}

// ItemEntities 按顺序返回条目实体
func (m *CircleMenuModule) ItemEntities() []ecs.EntityID {
	return append([]ecs.EntityID(nil), m.itemEntities...)
}

// ButtonEntity 触发按钮实体
func (m *CircleMenuModule) ButtonEntity() ecs.EntityID {
	return m.buttonEntity
}

// WrapperEntity 背景面板实体
func (m *CircleMenuModule) WrapperEntity() ecs.EntityID {
	return m.wrapperEntity
}

// LayoutParams 当前布局参数
func (m *CircleMenuModule) LayoutParams() layout.Params {
	return m.layoutSystem.Params()
}

// SetDebugLayout 开关布局调试覆盖层
func (m *CircleMenuModule) SetDebugLayout(enabled bool) {
	m.renderSystem.DebugLayout = enabled
}

// Err 最近一次条目刷新或布局的错误
func (m *CircleMenuModule) Err() error {
	return m.lastErr
}

// Cleanup 清理模块创建的所有实体
func (m *CircleMenuModule) Cleanup() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.destroyAll()
	log.Printf("[CircleMenuModule] 已清理")
}

// onVisibilityChanged 先按新状态刷新条目，再切换动画目标
func (m *CircleMenuModule) onVisibilityChanged(open bool) {
	if err := m.refreshItems(!open); err != nil {
		m.lastErr = err
		log.Printf("[CircleMenuModule] 刷新条目失败: %v", err)
	} else if err := m.layoutSystem.Relayout(m.width, m.height); err != nil {
		m.lastErr = err
		log.Printf("[CircleMenuModule] 布局失败: %v", err)
	}
	m.animationSystem.OnVisibilityChanged(open)
}

// toggleFromInput 按钮点击
func (m *CircleMenuModule) toggleFromInput() {
	if err := m.Toggle(); err != nil {
		log.Printf("[CircleMenuModule] 切换失败: %v", err)
	}
}

// setOpenFromContent 条目回调中使用的 setOpen
func (m *CircleMenuModule) setOpenFromContent(open bool) {
	if err := m.SetOpen(open); err != nil {
		log.Printf("[CircleMenuModule] setOpen(%v) 失败: %v", open, err)
	}
}

// refreshItems 调用条目提供函数并同步条目实体
//
// 新建的条目以 createdOpen 状态创建（即切换前的状态），随后由动画系统统一过渡。
// 条目数超过上限时不修改任何实体。
func (m *CircleMenuModule) refreshItems(createdOpen bool) error {
	contents := m.content(m.visibility.IsOpen(), m.setOpenFromContent)
	if len(contents) > config.MaxMenuItems {
		return &layout.TooManyItemsError{Count: len(contents), Max: config.MaxMenuItems}
	}

	for i, content := range contents {
		if i < len(m.itemEntities) {
			item, _ := ecs.GetComponent[*components.MenuItemComponent](m.entityManager, m.itemEntities[i])
			item.Content = content
			continue
		}
		id := entities.NewMenuItem(m.entityManager, m.config, i, content, createdOpen)
		m.itemEntities = append(m.itemEntities, id)
	}

	if len(m.itemEntities) > len(contents) {
		for _, id := range m.itemEntities[len(contents):] {
			m.entityManager.DestroyEntity(id)
		}
		m.entityManager.RemoveMarkedEntities()
		m.itemEntities = m.itemEntities[:len(contents)]
	}
	return nil
}

func (m *CircleMenuModule) destroyAll() {
	if wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](m.entityManager, m.wrapperEntity); ok && wrapper.Canvas != nil {
		wrapper.Canvas.Deallocate()
		wrapper.Canvas = nil
	}
	m.entityManager.DestroyEntity(m.buttonEntity)
	m.entityManager.DestroyEntity(m.wrapperEntity)
	for _, id := range m.itemEntities {
		m.entityManager.DestroyEntity(id)
	}
	m.entityManager.RemoveMarkedEntities()
	m.itemEntities = nil
}
