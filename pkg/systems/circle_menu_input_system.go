package systems

import (
	"log"

	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/utils"
)

// CircleMenuInputSystem 菜单的点击处理
//
// 命中顺序与绘制层级一致：按钮（最上层）优先，其次是打开状态下的条目。
// 背景面板本身不响应点击。
type CircleMenuInputSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource

	buttonEntity  ecs.EntityID
	wrapperEntity ecs.EntityID
	itemSize      float64

	isOpen   func() bool
	onToggle func()
}

// NewCircleMenuInputSystem 创建输入系统
// input 为 nil 时使用 utils.GetInputState
func NewCircleMenuInputSystem(
	em *ecs.EntityManager,
	input utils.InputSource,
	buttonEntity, wrapperEntity ecs.EntityID,
	itemSize float64,
	isOpen func() bool,
	onToggle func(),
) *CircleMenuInputSystem {
	if input == nil {
		input = utils.GetInputState
	}
	return &CircleMenuInputSystem{
		entityManager: em,
		input:         input,
		buttonEntity:  buttonEntity,
		wrapperEntity: wrapperEntity,
		itemSize:      itemSize,
		isOpen:        isOpen,
		onToggle:      onToggle,
	}
}

// SetItemSize 条目边长变化后同步命中区域
func (s *CircleMenuInputSystem) SetItemSize(size float64) {
	s.itemSize = size
}

// Update 读取本帧输入
func (s *CircleMenuInputSystem) Update(deltaTime float64) {
	state := s.input()
	x, y := float64(state.X), float64(state.Y)

	if btn, ok := ecs.GetComponent[*components.TriggerButtonComponent](s.entityManager, s.buttonEntity); ok {
		switch {
		case !s.hitButton(x, y):
			btn.State = components.UINormal
		case state.Pressed:
			btn.State = components.UIClicked
		default:
			btn.State = components.UIHovered
		}
	}

	if state.JustPressed {
		s.HandlePress(x, y)
	}
}

// HandlePress 处理一次按下，返回是否被菜单消费
func (s *CircleMenuInputSystem) HandlePress(x, y float64) bool {
	if s.hitButton(x, y) {
		log.Printf("[CircleMenuInputSystem] 按钮被点击 (%.0f, %.0f)", x, y)
		if s.onToggle != nil {
			s.onToggle()
		}
		return true
	}

	if s.isOpen == nil || !s.isOpen() {
		return false
	}

	wrapperPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.wrapperEntity)
	if !ok {
		return false
	}
	wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity)
	if !ok {
		return false
	}

	for _, id := range menuItemsByIndex(s.entityManager) {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		ix, iy, size := itemScreenRect(wrapperPos, wrapper, item, s.itemSize)
		if !utils.PointInRect(x, y, ix, iy, size, size) {
			continue
		}
		log.Printf("[CircleMenuInputSystem] 条目 %d 被点击", item.Index)
		if selectable, ok := item.Content.(components.MenuItemSelectable); ok {
			selectable.OnSelect()
		}
		return true
	}
	return false
}

// hitButton 按钮是圆形的，只响应圆内的点击
func (s *CircleMenuInputSystem) hitButton(x, y float64) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonEntity)
	if !ok {
		return false
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.buttonEntity)
	if !ok {
		return false
	}
	r := size.Width / 2
	return utils.PointInCircle(x, y, pos.X+r, pos.Y+r, r)
}
