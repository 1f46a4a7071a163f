package systems

import (
	"testing"

	"github.com/decker502/circlemenu/pkg/ecs"
)

// TestRenderDrawOrder 面板（5）先于按钮（10）绘制
func TestRenderDrawOrder(t *testing.T) {
	f := newMenuFixture(t, 3, 1000, 2000)
	sys := NewCircleMenuRenderSystem(f.em, f.button, f.wrapper, float64(f.cfg.ItemSize))

	order := sys.drawOrder()
	if len(order) != 2 || order[0] != f.wrapper || order[1] != f.button {
		t.Errorf("drawOrder = %v, 期望 [%d %d]", order, f.wrapper, f.button)
	}
}

// TestSortByZIndex 按层级排序，同层级保持输入顺序，没有层级的实体被跳过
func TestSortByZIndex(t *testing.T) {
	f := newMenuFixture(t, 3, 1000, 2000)
	noZ := f.em.CreateEntity()

	input := []ecs.EntityID{f.button, f.items[0], noZ, f.wrapper, f.items[1], f.items[2]}
	got := sortByZIndex(f.em, input)

	want := []ecs.EntityID{f.wrapper, f.items[0], f.items[1], f.items[2], f.button}
	if len(got) != len(want) {
		t.Fatalf("sortByZIndex = %v, 期望 %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sortByZIndex[%d] = %d, 期望 %d", i, got[i], want[i])
		}
	}
}

// TestItemScreenRectFollowsReveal 面板缩放时条目一起向右下角收缩
func TestItemScreenRectFollowsReveal(t *testing.T) {
	f := newMenuFixture(t, 1, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)
	anim.OnVisibilityChanged(true)
	run(anim, 300, frame)

	wrapperPos := f.position(f.wrapper)
	wrapper := f.wrapperComponent()
	item := f.item(0)

	x, y, size := itemScreenRect(wrapperPos, wrapper, item, 150)
	natural := f.position(f.items[0])
	if x != natural.X || y != natural.Y || size != 150 {
		t.Errorf("完全显示时 = (%v, %v, %v), 期望 (%v, %v, 150)", x, y, size, natural.X, natural.Y)
	}

	// 面板圆心即容器右下角
	cx, cy := wrapperPos.X+wrapper.Diameter/2, wrapperPos.Y+wrapper.Diameter/2
	if cx != 1000 || cy != 2000 {
		t.Errorf("面板圆心 = (%v, %v), 期望 (1000, 2000)", cx, cy)
	}
}

// TestRenderFrameClosed 关闭状态：面板不可见，条目收缩到面板圆心
func TestRenderFrameClosed(t *testing.T) {
	f := newMenuFixture(t, 3, 1000, 2000)
	sys := NewCircleMenuRenderSystem(f.em, f.button, f.wrapper, float64(f.cfg.ItemSize))

	frame := sys.Frame()
	if frame.Alpha != 0 || frame.Radius != 0 {
		t.Errorf("Alpha, Radius = %v, %v, 期望 0, 0", frame.Alpha, frame.Radius)
	}
	if frame.ButtonX != 760 || frame.ButtonY != 1760 || frame.ButtonSize != 160 {
		t.Errorf("按钮 = (%v, %v, %v), 期望 (760, 1760, 160)", frame.ButtonX, frame.ButtonY, frame.ButtonSize)
	}
	if len(frame.Items) != 3 {
		t.Fatalf("Items = %d, 期望 3", len(frame.Items))
	}
	for _, item := range frame.Items {
		if item.X != 1000 || item.Y != 2000 || item.Size != 0 {
			t.Errorf("条目 %d = (%v, %v, %v), 期望收缩到 (1000, 2000)", item.Index, item.X, item.Y, item.Size)
		}
		if item.Content != f.stubs[item.Index] {
			t.Errorf("条目 %d 的内容不匹配", item.Index)
		}
	}
}

// TestRenderFrameOpen 打开并稳定后：面板完全显示，条目位于自然位置
func TestRenderFrameOpen(t *testing.T) {
	f := newMenuFixture(t, 1, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)
	anim.OnVisibilityChanged(true)
	run(anim, 300, frame)

	sys := NewCircleMenuRenderSystem(f.em, f.button, f.wrapper, float64(f.cfg.ItemSize))
	fr := sys.Frame()

	if fr.Alpha != 1 || fr.Radius != 875 {
		t.Errorf("Alpha, Radius = %v, %v, 期望 1, 875", fr.Alpha, fr.Radius)
	}
	if fr.CenterX != 1000 || fr.CenterY != 2000 {
		t.Errorf("圆心 = (%v, %v), 期望 (1000, 2000)", fr.CenterX, fr.CenterY)
	}
	if got := fr.Items[0]; got.X != 125+105 || got.Y != 1125+657 || got.Size != 150 {
		t.Errorf("条目 0 = (%v, %v, %v), 期望 (230, 1782, 150)", got.X, got.Y, got.Size)
	}
	if fr.ButtonRotation != f.cfg.ButtonRotationDeg {
		t.Errorf("ButtonRotation = %v, 期望 %v", fr.ButtonRotation, f.cfg.ButtonRotationDeg)
	}
}
