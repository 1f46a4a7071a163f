package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., the menu demo).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于在逻辑屏幕尺寸变化时重新布局
//
// 实现此接口的场景会在 App.Layout 检测到尺寸变化时被调用 Resize()：
//   - 窗口缩放
//   - 进入/退出全屏
//   - 移动端横竖屏切换
type Resizable interface {
	// Resize 通知场景新的逻辑屏幕尺寸
	Resize(width, height int)
}
