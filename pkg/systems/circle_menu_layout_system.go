package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/layout"
)

// CircleMenuLayoutSystem 圆形菜单的测量与摆放
//
// 每当容器尺寸或条目数量变化时调用 Relayout：
//   - 按钮：固定 MaxMenuButtonSize 边长，左上角位于 (W-240, H-240)
//   - 背景面板：边长 a，圆心对齐容器右下角
//   - 条目：自然位置 = 面板位置 + 布局结果，收拢偏移随布局一起更新
//
// 布局计算失败（条目过多）时不修改任何组件，保留上一次的结果。
type CircleMenuLayoutSystem struct {
	entityManager *ecs.EntityManager
	config        *config.CircleMenuConfig

	buttonEntity  ecs.EntityID
	wrapperEntity ecs.EntityID

	width, height int
}

// NewCircleMenuLayoutSystem 创建布局系统
func NewCircleMenuLayoutSystem(
	em *ecs.EntityManager,
	cfg *config.CircleMenuConfig,
	buttonEntity, wrapperEntity ecs.EntityID,
) *CircleMenuLayoutSystem {
	return &CircleMenuLayoutSystem{
		entityManager: em,
		config:        cfg,
		buttonEntity:  buttonEntity,
		wrapperEntity: wrapperEntity,
	}
}

// ContainerSize 最近一次成功布局的容器尺寸
func (s *CircleMenuLayoutSystem) ContainerSize() (int, int) {
	return s.width, s.height
}

// Params 当前容器尺寸对应的布局参数
func (s *CircleMenuLayoutSystem) Params() layout.Params {
	return layout.ParamsFromConfig(s.config, s.width, s.height)
}

// Relayout 按 width×height 的容器重新测量所有实体
func (s *CircleMenuLayoutSystem) Relayout(width, height int) error {
	items := menuItemsByIndex(s.entityManager)

	p := layout.ParamsFromConfig(s.config, width, height)
	targets, err := layout.Compute(len(items), p)
	if err != nil {
		return fmt.Errorf("circle menu layout failed: %w", err)
	}

	changed := width != s.width || height != s.height
	s.width, s.height = width, height

	// 按钮
	buttonOffset := float64(config.MaxMenuButtonSize + config.MaxMenuButtonSize/2)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonEntity); ok {
		pos.X = float64(width) - buttonOffset
		pos.Y = float64(height) - buttonOffset
	}

	// 背景面板
	a := int(layout.Diameter(p))
	wrapperX := float64(width - a/2)
	wrapperY := float64(height - a/2)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.wrapperEntity); ok {
		pos.X, pos.Y = wrapperX, wrapperY
	}
	if size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.wrapperEntity); ok {
		size.Width, size.Height = float64(a), float64(a)
	}
	if wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity); ok {
		if wrapper.Diameter != float64(a) {
			if wrapper.Canvas != nil {
				wrapper.Canvas.Deallocate()
				wrapper.Canvas = nil
			}
			wrapper.Diameter = float64(a)
		}
	}

	// 条目
	for i, id := range items {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		target := targets[i]
		item.Index = i
		item.Target = target

		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.X = wrapperX + float64(target.X)
			pos.Y = wrapperY + float64(target.Y)
		}
		if size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, id); ok {
			size.Width = float64(s.config.ItemSize)
			size.Height = float64(s.config.ItemSize)
		}

		restX, restY := item.RestingOffset()
		switch {
		case !item.Placed:
			// 首次布局：直接停在当前状态的终点
			item.OffsetX.Snap(restX)
			item.OffsetY.Snap(restY)
			item.Placed = true
		case !item.Revealed && item.OffsetX.IsSettled() && item.OffsetY.IsSettled():
			// 关闭且静止：跟随新的收拢位置，不产生动画
			item.OffsetX.Snap(restX)
			item.OffsetY.Snap(restY)
		default:
			item.OffsetX.SetTarget(restX)
			item.OffsetY.SetTarget(restY)
		}
	}

	if changed {
		log.Printf("[CircleMenuLayoutSystem] 布局 %dx%d: 面板边长=%d, 条目=%d", width, height, a, len(items))
	}
	return nil
}

// menuItemsByIndex 按 Index 排序的条目实体
func menuItemsByIndex(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.MenuItemComponent](em)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.MenuItemComponent](em, ids[i])
		b, _ := ecs.GetComponent[*components.MenuItemComponent](em, ids[j])
		return a.Index < b.Index
	})
	return ids
}
