package systems

import (
	"log"

	"github.com/decker502/circlemenu/pkg/animation"
	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
)

// CircleMenuAnimationSystem 菜单开关动画的编排
//
// 可见状态变化时一次性改写所有动画目标：
//   - 按钮：颜色与旋转走弹簧
//   - 背景面板：Reveal 补间同时驱动透明度和缩放
//   - 条目：打开时第 i 个条目等待 (i+1)×StaggerPerItemMs 后才切换目标，
//     关闭时取消所有未到期的等待并立即收拢
//
// 每帧先推进共享时钟，再处理到期的延时，最后推进弹簧和补间。
type CircleMenuAnimationSystem struct {
	entityManager *ecs.EntityManager
	config        *config.CircleMenuConfig
	clock         *animation.FrameClock

	buttonEntity  ecs.EntityID
	wrapperEntity ecs.EntityID

	open bool
}

// NewCircleMenuAnimationSystem 创建动画系统
func NewCircleMenuAnimationSystem(
	em *ecs.EntityManager,
	cfg *config.CircleMenuConfig,
	clock *animation.FrameClock,
	buttonEntity, wrapperEntity ecs.EntityID,
	open bool,
) *CircleMenuAnimationSystem {
	if clock == nil {
		clock = animation.NewFrameClock()
	}
	return &CircleMenuAnimationSystem{
		entityManager: em,
		config:        cfg,
		clock:         clock,
		buttonEntity:  buttonEntity,
		wrapperEntity: wrapperEntity,
		open:          open,
	}
}

// Clock 共享帧时钟
func (s *CircleMenuAnimationSystem) Clock() *animation.FrameClock {
	return s.clock
}

// OnVisibilityChanged 切换所有动画目标
func (s *CircleMenuAnimationSystem) OnVisibilityChanged(open bool) {
	s.open = open

	if btn, ok := ecs.GetComponent[*components.TriggerButtonComponent](s.entityManager, s.buttonEntity); ok {
		if open {
			btn.ColorProgress.SetTarget(1)
			btn.Rotation.SetTarget(btn.OpenRotationDeg)
		} else {
			btn.ColorProgress.SetTarget(0)
			btn.Rotation.SetTarget(0)
		}
	}

	if wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity); ok {
		if open {
			wrapper.Reveal.AnimateTo(1)
		} else {
			wrapper.Reveal.AnimateTo(0)
		}
	}

	now := s.clock.Now()
	for _, id := range ecs.GetEntitiesWith1[*components.MenuItemComponent](s.entityManager) {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		if open {
			item.Stagger.Schedule(now, s.config.StaggerDelay(item.Index))
			continue
		}
		item.Stagger.Cancel()
		item.Revealed = false
		restX, restY := item.RestingOffset()
		item.OffsetX.SetTarget(restX)
		item.OffsetY.SetTarget(restY)
	}

	log.Printf("[CircleMenuAnimationSystem] 可见状态 -> %v (t=%v)", open, now)
}

// Update 推进一帧（deltaTime 单位为秒）
func (s *CircleMenuAnimationSystem) Update(deltaTime float64) {
	step := animation.SecondsToDuration(deltaTime)
	s.clock.Advance(step)
	now := s.clock.Now()

	items := ecs.GetEntitiesWith1[*components.MenuItemComponent](s.entityManager)
	for _, id := range items {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		if item.Stagger.Due(now) && s.open {
			item.Revealed = true
			item.OffsetX.SetTarget(0)
			item.OffsetY.SetTarget(0)
		}
	}

	if btn, ok := ecs.GetComponent[*components.TriggerButtonComponent](s.entityManager, s.buttonEntity); ok {
		btn.ColorProgress.Step(deltaTime)
		btn.Rotation.Step(deltaTime)
	}
	if wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity); ok {
		wrapper.Reveal.Step(step)
	}
	for _, id := range items {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		item.OffsetX.Step(deltaTime)
		item.OffsetY.Step(deltaTime)
	}
}

// IsSettled 所有动画都已停止且没有未到期的延时
func (s *CircleMenuAnimationSystem) IsSettled() bool {
	if btn, ok := ecs.GetComponent[*components.TriggerButtonComponent](s.entityManager, s.buttonEntity); ok {
		if !btn.ColorProgress.IsSettled() || !btn.Rotation.IsSettled() {
			return false
		}
	}
	if wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity); ok {
		if wrapper.Reveal.IsRunning() {
			return false
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.MenuItemComponent](s.entityManager) {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		if item.Stagger.Pending() || !item.OffsetX.IsSettled() || !item.OffsetY.IsSettled() {
			return false
		}
	}
	return true
}
