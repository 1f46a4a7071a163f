package systems

import (
	"image/color"

	"github.com/decker502/circlemenu/pkg/animation"
	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/ecs"
)

// ItemFrame 单个条目在当前帧的屏幕矩形
type ItemFrame struct {
	Index   int
	X, Y    float64
	Size    float64
	Content components.MenuItemRenderable
}

// MenuFrame 当前帧合成结果的几何快照
//
// 与 Draw 使用同一套变换，不依赖 GPU，供终端预览和测试使用。
type MenuFrame struct {
	// 背景面板：圆心 (CenterX, CenterY)，当前半径 Radius，透明度 Alpha
	CenterX, CenterY float64
	Radius           float64
	Alpha            float64
	Background       color.Color

	// 按钮
	ButtonX, ButtonY float64
	ButtonSize       float64
	ButtonRotation   float64
	ButtonColor      color.Color

	Items []ItemFrame
}

// Frame 计算当前帧的快照
func (s *CircleMenuRenderSystem) Frame() MenuFrame {
	var f MenuFrame

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.wrapperEntity); ok {
		if wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity); ok {
			reveal := wrapper.Reveal.Value()
			c := wrapper.Diameter / 2
			f.CenterX, f.CenterY = pos.X+c, pos.Y+c
			f.Radius = c * reveal
			f.Alpha = reveal
			f.Background = wrapper.Background

			for _, id := range menuItemsByIndex(s.entityManager) {
				item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
				x, y, size := itemScreenRect(pos, wrapper, item, s.itemSize)
				f.Items = append(f.Items, ItemFrame{Index: item.Index, X: x, Y: y, Size: size, Content: item.Content})
			}
		}
	}

	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonEntity)
	size, ok2 := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.buttonEntity)
	btn, ok3 := ecs.GetComponent[*components.TriggerButtonComponent](s.entityManager, s.buttonEntity)
	if ok1 && ok2 && ok3 {
		f.ButtonX, f.ButtonY = pos.X, pos.Y
		f.ButtonSize = size.Width
		f.ButtonRotation = btn.Rotation.Value
		f.ButtonColor = animation.BlendColor(btn.ClosedColor, btn.OpenColor, btn.ColorProgress.Value)
	}

	return f
}
