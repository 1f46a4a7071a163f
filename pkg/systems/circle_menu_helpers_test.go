package systems

import (
	"testing"

	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubItem 不绘制任何内容的条目，记录被选中的次数
type stubItem struct {
	selected int
}

func (s *stubItem) Draw(dst *ebiten.Image, x, y, size float64) {}

func (s *stubItem) OnSelect() { s.selected++ }

// menuFixture 测试用的菜单实体集合
type menuFixture struct {
	em      *ecs.EntityManager
	cfg     *config.CircleMenuConfig
	button  ecs.EntityID
	wrapper ecs.EntityID
	items   []ecs.EntityID
	stubs   []*stubItem
}

// newMenuFixture 创建关闭状态的按钮、面板和 n 个条目，并在 width×height 中完成布局
func newMenuFixture(t *testing.T, n, width, height int) *menuFixture {
	t.Helper()

	f := &menuFixture{
		em:  ecs.NewEntityManager(),
		cfg: config.DefaultCircleMenuConfig(),
	}
	f.button = entities.NewTriggerButton(f.em, f.cfg, false)
	f.wrapper = entities.NewMenuWrapper(f.em, f.cfg, false)
	for i := 0; i < n; i++ {
		stub := &stubItem{}
		f.stubs = append(f.stubs, stub)
		f.items = append(f.items, entities.NewMenuItem(f.em, f.cfg, i, stub, false))
	}

	if err := NewCircleMenuLayoutSystem(f.em, f.cfg, f.button, f.wrapper).Relayout(width, height); err != nil {
		t.Fatalf("Relayout 失败: %v", err)
	}
	return f
}

func (f *menuFixture) item(i int) *components.MenuItemComponent {
	item, _ := ecs.GetComponent[*components.MenuItemComponent](f.em, f.items[i])
	return item
}

func (f *menuFixture) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	return pos
}

func (f *menuFixture) buttonComponent() *components.TriggerButtonComponent {
	btn, _ := ecs.GetComponent[*components.TriggerButtonComponent](f.em, f.button)
	return btn
}

func (f *menuFixture) wrapperComponent() *components.MenuWrapperComponent {
	wrapper, _ := ecs.GetComponent[*components.MenuWrapperComponent](f.em, f.wrapper)
	return wrapper
}

// run 以固定步长推进 frames 帧
func run(sys *CircleMenuAnimationSystem, frames int, dt float64) {
	for i := 0; i < frames; i++ {
		sys.Update(dt)
	}
}
