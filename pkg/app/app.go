// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/game"
	"github.com/decker502/circlemenu/pkg/scenes"
	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "circlemenu"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Items 显示的条目数（0 表示使用目录中的全部条目）
	Items int
	// ItemSize 条目边长，0 表示使用保存的设置或配置文件
	ItemSize int
	// DebugLayout 显示布局调试覆盖层（与保存的设置取或）
	DebugLayout bool
	// DisableStorage 不读写 gdata（测试和工具使用）
	DisableStorage bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时配置从文件系统读取。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载菜单参数与条目目录
	menuConfig, err := config.LoadCircleMenuConfig(config.CircleMenuConfigPath)
	if err != nil {
		return nil, fmt.Errorf("菜单配置加载失败: %w", err)
	}
	registry, err := config.LoadMenuItemRegistry(config.MenuItemsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("条目目录加载失败: %w", err)
	}
	log.Printf("[Config] 加载菜单配置: itemSize=%d, %d 个条目", menuConfig.ItemSize, registry.Len())

	// 显示设置（gdata 不可用时降级为内存设置）
	settingsManager := openSettings(cfg.DisableStorage)
	settings := settingsManager.GetSettings()

	// 命令行参数优先于保存的设置
	switch {
	case cfg.ItemSize > 0:
		menuConfig.ItemSize = cfg.ItemSize
	case settings.ItemSize > 0:
		menuConfig.ItemSize = settings.ItemSize
	}
	if err := menuConfig.Validate(); err != nil {
		return nil, fmt.Errorf("菜单配置无效: %w", err)
	}

	items := cfg.Items
	if items <= 0 {
		items = registry.Len()
	}

	width, height := LogicalSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	sceneManager := game.NewSceneManager()

	demo, err := scenes.NewMenuDemoScene(scenes.MenuDemoOptions{
		Config:      menuConfig,
		Registry:    registry,
		ItemCount:   items,
		Width:       width,
		Height:      height,
		DebugLayout: cfg.DebugLayout || settings.ShowLayoutDebug,
		OnDebugLayoutChanged: func(enabled bool) {
			settingsManager.SetShowLayoutDebug(enabled)
			if err := settingsManager.Save(); err != nil {
				log.Printf("[App] Warning: failed to save settings: %v", err)
			}
		},
		OnItemSizeChanged: func(size int) {
			settingsManager.SetItemSize(size)
			if err := settingsManager.Save(); err != nil {
				log.Printf("[App] Warning: failed to save settings: %v", err)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	sceneManager.SwitchTo(demo)
	sceneManager.Resize(width, height)

	log.Printf("[App] Started: %d items, logical size %dx%d", items, width, height)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// openSettings 打开 gdata 并加载显示设置
func openSettings(disabled bool) *game.SettingsManager {
	if disabled {
		sm, _ := game.NewSettingsManager(nil)
		return sm
	}

	storage, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	sm, _ := game.NewSettingsManager(storage)
	return sm
}

// LogicalSize 窗口尺寸到逻辑屏幕尺寸的换算
func LogicalSize(outsideWidth, outsideHeight int) (int, int) {
	return int(float64(outsideWidth) * config.RenderScale), int(float64(outsideHeight) * config.RenderScale)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(config.TPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的滤波和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸随窗口变化（乘以 RenderScale），菜单随之重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := LogicalSize(outsideWidth, outsideHeight)
	a.sceneManager.Resize(width, height)
	return width, height
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}
