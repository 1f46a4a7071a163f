package components

import (
	"image/color"

	"github.com/decker502/circlemenu/pkg/animation"
	"github.com/decker502/circlemenu/pkg/layout"
	"github.com/hajimehoshi/ebiten/v2"
)

// PositionComponent 实体左上角的屏幕坐标（逻辑像素）
type PositionComponent struct {
	X float64
	Y float64
}

// SizeComponent 实体测量后的尺寸
type SizeComponent struct {
	Width  float64
	Height float64
}

// ZIndexComponent 绘制层级，数值大的后绘制（在上层）
type ZIndexComponent struct {
	Z int
}

// MenuItemRenderable 菜单条目的可绘制内容
// 菜单只负责定位和动画，条目长什么样由调用方决定
type MenuItemRenderable interface {
	// Draw 在 (x, y) 处绘制边长为 size 的条目
	Draw(dst *ebiten.Image, x, y, size float64)
}

// MenuItemSelectable 可选接口：条目被点击时调用
type MenuItemSelectable interface {
	OnSelect()
}

// TriggerButtonComponent 菜单触发按钮（右下角的圆形按钮）
//
// 与 PositionComponent、SizeComponent、ZIndexComponent 配合使用
type TriggerButtonComponent struct {
	ClosedColor color.Color
	OpenColor   color.Color
	// ColorProgress 0 = 关闭色，1 = 打开色
	ColorProgress *animation.Spring

	// Rotation 图标旋转角度（度）
	Rotation *animation.Spring
	// OpenRotationDeg 打开状态的目标角度
	OpenRotationDeg float64

	// State 当前交互状态（按下时用于反馈）
	State UIState
}

// MenuWrapperComponent 背景面板（同时是条目的容器）
//
// Reveal 一个标量同时驱动透明度和缩放，二者始终同步。
type MenuWrapperComponent struct {
	// Diameter 包装层边长 a
	Diameter   float64
	Background color.Color
	Reveal     *animation.Tween

	// Canvas 离屏画布，尺寸变化时重建
	Canvas *ebiten.Image
}

// MenuItemComponent 单个菜单条目
type MenuItemComponent struct {
	Index   int
	Content MenuItemRenderable

	// Target 布局结果（自然位置与关闭时的收拢偏移）
	Target layout.Target

	// OffsetX, OffsetY 相对自然位置的动画偏移
	OffsetX *animation.Spring
	OffsetY *animation.Spring

	// Stagger 打开时的错峰延时
	Stagger animation.Delay

	// Revealed 当前生效的目标：true 偏移归零，false 偏移到收拢位置
	// 与菜单的打开状态之间相差一个错峰延时
	Revealed bool

	// Placed 是否已经完成过一次布局
	Placed bool
}

// RestingOffset 当前目标下的静止偏移
func (m *MenuItemComponent) RestingOffset() (float64, float64) {
	if m.Revealed {
		return 0, 0
	}
	return float64(m.Target.CollapseX), float64(m.Target.CollapseY)
}
