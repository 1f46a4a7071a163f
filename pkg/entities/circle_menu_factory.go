package entities

import (
	"github.com/decker502/circlemenu/pkg/animation"
	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/utils"
)

// 动画静止阈值
const (
	// OffsetThreshold 条目偏移（像素）
	OffsetThreshold = 0.1
	// RotationThreshold 按钮旋转（度）
	RotationThreshold = 0.01
	// ColorThreshold 颜色进度（0~1）
	ColorThreshold = 0.001
)

// NewTriggerButton 创建右下角的触发按钮实体
//
// 位置与尺寸由布局系统在首次 Relayout 时写入，这里只放占位值。
// open 为创建时菜单的可见状态，动画值直接吸附到对应终点。
func NewTriggerButton(em *ecs.EntityManager, cfg *config.CircleMenuConfig, open bool) ecs.EntityID {
	entity := em.CreateEntity()

	rotation, progress := 0.0, 0.0
	if open {
		rotation, progress = cfg.ButtonRotationDeg, 1
	}

	ecs.AddComponent(em, entity, &components.PositionComponent{})
	ecs.AddComponent(em, entity, &components.SizeComponent{
		Width:  config.MaxMenuButtonSize,
		Height: config.MaxMenuButtonSize,
	})
	ecs.AddComponent(em, entity, &components.ZIndexComponent{Z: config.ZIndexMenuButton})
	ecs.AddComponent(em, entity, &components.TriggerButtonComponent{
		ClosedColor:     cfg.ButtonClosedColor,
		OpenColor:       cfg.ButtonOpenColor,
		ColorProgress:   animation.NewSpring(cfg.ColorSpring, progress, ColorThreshold),
		Rotation:        animation.NewSpring(cfg.RotationSpring, rotation, RotationThreshold),
		OpenRotationDeg: cfg.ButtonRotationDeg,
		State:           components.UINormal,
	})

	return entity
}

// NewMenuWrapper 创建背景面板实体
func NewMenuWrapper(em *ecs.EntityManager, cfg *config.CircleMenuConfig, open bool) ecs.EntityID {
	entity := em.CreateEntity()

	reveal := 0.0
	if open {
		reveal = 1
	}

	ecs.AddComponent(em, entity, &components.PositionComponent{})
	ecs.AddComponent(em, entity, &components.SizeComponent{})
	ecs.AddComponent(em, entity, &components.ZIndexComponent{Z: config.ZIndexMenuWrapper})
	ecs.AddComponent(em, entity, &components.MenuWrapperComponent{
		Background: cfg.MenuBackgroundColor,
		Reveal:     animation.NewTween(reveal, cfg.PanelTweenDuration(), utils.LinearOutSlowIn),
	})

	return entity
}

// NewMenuItem 创建第 index 个菜单条目
//
// 偏移弹簧在第一次布局时吸附到收拢位置（关闭）或 0（打开）。
func NewMenuItem(
	em *ecs.EntityManager,
	cfg *config.CircleMenuConfig,
	index int,
	content components.MenuItemRenderable,
	open bool,
) ecs.EntityID {
	entity := em.CreateEntity()

	size := float64(cfg.ItemSize)
	ecs.AddComponent(em, entity, &components.PositionComponent{})
	ecs.AddComponent(em, entity, &components.SizeComponent{Width: size, Height: size})
	ecs.AddComponent(em, entity, &components.ZIndexComponent{Z: config.ZIndexMenuItem})
	ecs.AddComponent(em, entity, &components.MenuItemComponent{
		Index:    index,
		Content:  content,
		OffsetX:  animation.NewSpring(cfg.ItemSpring, 0, OffsetThreshold),
		OffsetY:  animation.NewSpring(cfg.ItemSpring, 0, OffsetThreshold),
		Revealed: open,
	})

	return entity
}
