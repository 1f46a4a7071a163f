// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type InputState struct {
	// JustPressed 本帧刚刚按下
	JustPressed bool
	// Pressed 当前处于按下状态
	Pressed bool
	// X, Y 指针位置（逻辑像素）
	X, Y int
	// IsTouching 是否来自触摸
	IsTouching bool
}

// InputSource 输入来源，测试中可以替换为固定序列
type InputSource func() InputState

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标和触摸，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 新的触摸
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.Pressed = true
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	// 持续中的触摸
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.Pressed = true
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	// 鼠标
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return state
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	state := GetInputState()
	if !state.JustPressed {
		return false, 0, 0
	}
	return true, state.X, state.Y
}

// PointInCircle 点 (px, py) 是否落在圆心 (cx, cy)、半径 r 的圆内（含边界）
func PointInCircle(px, py, cx, cy, r float64) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

// PointInRect 点 (px, py) 是否落在左上角 (x, y)、尺寸 w×h 的矩形内
// 左、上边界包含，右、下边界不包含
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
