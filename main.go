package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/decker502/circlemenu/pkg/app"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/embedded"
)

func main() {
	// 命令行参数
	verbose := pflag.BoolP("verbose", "v", false, "显示详细日志")
	items := pflag.IntP("items", "n", 0, fmt.Sprintf("显示的条目数 (0=全部, 最多 %d)", config.MaxMenuItems))
	itemSize := pflag.Int("item-size", 0, "条目边长（逻辑像素，0=使用设置或配置文件）")
	fullscreen := pflag.Bool("fullscreen", false, "全屏启动")
	debugLayout := pflag.Bool("debug-layout", false, "显示布局调试覆盖层")
	noStorage := pflag.Bool("no-storage", false, "不读写保存的设置")
	pflag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		Items:          *items,
		ItemSize:       *itemSize,
		DebugLayout:    *debugLayout,
		DisableStorage: *noStorage,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle("Circle Menu")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if *fullscreen || gameApp.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
