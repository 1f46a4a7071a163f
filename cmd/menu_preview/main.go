// menu_preview 在终端中预览圆形菜单的开关动画
//
// 每个字符单元对应 8×16 逻辑像素，终端尺寸即容器尺寸。
// 空格/回车切换菜单，鼠标点击按钮或条目，q/Esc 退出。
//
// 用法：
//
//	go run ./cmd/menu_preview --items 7
package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/modules"
	"github.com/decker502/circlemenu/pkg/systems"
	"github.com/decker502/circlemenu/pkg/utils"
)

// 字符单元对应的逻辑像素
const (
	cellWidth  = 8
	cellHeight = 16
)

// referenceWidth 默认条目尺寸对应的容器宽度
const referenceWidth = 1080

var (
	// 命令行参数
	items    = pflag.IntP("items", "n", config.MaxMenuItems, "条目数")
	itemSize = pflag.Int("item-size", 0, "条目边长（逻辑像素，0=按终端宽度缩放）")
	fps      = pflag.Int("fps", 60, "刷新率")
)

// previewItem 终端中的条目：只保留标题和颜色
type previewItem struct {
	spec     config.MenuItemSpec
	selected *string
	setOpen  func(bool)
}

func (p *previewItem) Draw(dst *ebiten.Image, x, y, size float64) {}

func (p *previewItem) OnSelect() {
	*p.selected = p.spec.Title
	p.setOpen(false)
}

// preview 终端预览状态
type preview struct {
	screen   tcell.Screen
	em       *ecs.EntityManager
	menu     *modules.CircleMenuModule
	cfg      *config.CircleMenuConfig
	specs    []config.MenuItemSpec
	selected string

	cols, rows  int
	prevButtons tcell.ButtonMask
}

func newPreview(screen tcell.Screen) (*preview, error) {
	p := &preview{
		screen: screen,
		em:     ecs.NewEntityManager(),
		cfg:    config.DefaultCircleMenuConfig(),
	}
	specs := config.DefaultMenuItemSpecs
	for i := 0; i < *items; i++ {
		p.specs = append(p.specs, specs[i%len(specs)])
	}

	p.cols, p.rows = screen.Size()
	p.cfg.ItemSize = p.scaledItemSize()

	menu, err := modules.NewCircleMenuModule(p.em, p.cfg, p.cols*cellWidth, p.rows*cellHeight, p.content, func() utils.InputState {
		return utils.InputState{X: -1, Y: -1}
	})
	if err != nil {
		return nil, err
	}
	p.menu = menu
	return p, nil
}

// scaledItemSize 按终端宽度缩放条目尺寸
func (p *preview) scaledItemSize() int {
	if *itemSize > 0 {
		return *itemSize
	}
	return max(cellHeight, p.cfg.ItemSize*p.cols*cellWidth/referenceWidth)
}

func (p *preview) content(isOpen bool, setOpen func(bool)) []components.MenuItemRenderable {
	out := make([]components.MenuItemRenderable, 0, len(p.specs))
	for _, spec := range p.specs {
		out = append(out, &previewItem{spec: spec, selected: &p.selected, setOpen: setOpen})
	}
	return out
}

// handleEvent 返回 false 表示退出
func (p *preview) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
			if err := p.menu.Toggle(); err != nil {
				p.selected = err.Error()
			}
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && p.prevButtons&tcell.Button1 == 0 {
			x, y := ev.Position()
			p.menu.HandlePress(float64(x*cellWidth+cellWidth/2), float64(y*cellHeight+cellHeight/2))
		}
		p.prevButtons = buttons

	case *tcell.EventResize:
		p.screen.Sync()
		p.cols, p.rows = p.screen.Size()
		if err := p.menu.Resize(p.cols*cellWidth, p.rows*cellHeight); err != nil {
			p.selected = err.Error()
		}
	}
	return true
}

func (p *preview) draw() {
	frame := p.menu.Frame()
	background := tcell.StyleDefault.Background(tcell.ColorWhite)

	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			x := float64(col*cellWidth + cellWidth/2)
			y := float64(row*cellHeight + cellHeight/2)
			r, style := p.cellAt(frame, x, y, background)
			p.screen.SetContent(col, row, r, nil, style)
		}
	}

	state := "closed"
	if p.menu.IsOpen() {
		state = "open"
	}
	status := fmt.Sprintf(" %s  items=%d  itemSize=%d  %s ", state, len(p.specs), p.cfg.ItemSize, p.selected)
	for i, r := range status {
		if i >= p.cols {
			break
		}
		p.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite))
	}

	p.screen.Show()
}

// cellAt 单元格内容，优先级与绘制层级一致：按钮 > 条目 > 面板 > 背景
func (p *preview) cellAt(frame systems.MenuFrame, x, y float64, background tcell.Style) (rune, tcell.Style) {
	half := frame.ButtonSize / 2
	if utils.PointInCircle(x, y, frame.ButtonX+half, frame.ButtonY+half, half) {
		fill := tcellColor(frame.ButtonColor, 1)
		r := ' '
		if math.Abs(x-(frame.ButtonX+half)) < cellWidth && math.Abs(y-(frame.ButtonY+half)) < cellHeight {
			r = '+'
			if frame.ButtonRotation > p.cfg.ButtonRotationDeg/2 {
				r = '×'
			}
		}
		return r, tcell.StyleDefault.Background(fill).Foreground(tcell.ColorWhite)
	}

	for _, item := range frame.Items {
		if item.Size <= 0 || !utils.PointInRect(x, y, item.X, item.Y, item.Size, item.Size) {
			continue
		}
		spec := p.specs[item.Index]
		r := ' '
		if y-item.Y < cellHeight && x-item.X < cellWidth && spec.Title != "" {
			r = []rune(spec.Title)[0]
		}
		return r, tcell.StyleDefault.Background(tcellColor(spec.Color, frame.Alpha)).Foreground(tcell.ColorBlack)
	}

	if frame.Radius > 0 && utils.PointInCircle(x, y, frame.CenterX, frame.CenterY, frame.Radius) {
		return ' ', tcell.StyleDefault.Background(tcellColor(frame.Background, frame.Alpha))
	}
	return ' ', background
}

// tcellColor 按 alpha 与白色背景混合后转换为终端颜色
func tcellColor(c color.Color, alpha float64) tcell.Color {
	r, g, b, _ := c.RGBA()
	mix := func(v uint32) int32 {
		return int32(float64(v>>8)*alpha + 255*(1-alpha))
	}
	return tcell.NewRGBColor(mix(r), mix(g), mix(b))
}

// pollEvents 在后台读取终端事件
// 屏幕 Fini 后 PollEvent 返回 nil，此时关闭通道并退出；done 关闭后不再投递
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (p *preview) run() {
	frameTime := time.Second / time.Duration(max(1, *fps))
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(p.screen, done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !p.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			p.menu.Update(now.Sub(last).Seconds())
			last = now
			p.draw()
		}
	}
}

func main() {
	pflag.Parse()

	// 日志会破坏终端画面
	log.SetOutput(io.Discard)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "menu_preview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "menu_preview: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	p, err := newPreview(screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "menu_preview: %v\n", err)
		os.Exit(1)
	}

	p.run()
	p.menu.Cleanup()
	screen.Fini()
}
