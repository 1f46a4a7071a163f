package scenes

import (
	"errors"
	"testing"

	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/game"
	"github.com/decker502/circlemenu/pkg/layout"
	"github.com/decker502/circlemenu/pkg/utils"
)

func idleInput() utils.InputState {
	return utils.InputState{X: -1, Y: -1}
}

func newTestScene(t *testing.T, items int) *MenuDemoScene {
	t.Helper()
	s, err := NewMenuDemoScene(MenuDemoOptions{
		ItemCount: items,
		Width:     1000,
		Height:    2000,
		Input:     idleInput,
	})
	if err != nil {
		t.Fatalf("NewMenuDemoScene 失败: %v", err)
	}
	return s
}

func TestCycleSpecs(t *testing.T) {
	specs := config.DefaultMenuItemSpecs

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"零个", 0, 0},
		{"负数", -1, 0},
		{"少于目录", 3, 3},
		{"超出目录", 9, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cycleSpecs(specs, tt.n)
			if len(got) != tt.want {
				t.Fatalf("cycleSpecs(%d) 返回 %d 个条目, 期望 %d", tt.n, len(got), tt.want)
			}
			for i, spec := range got {
				if spec != specs[i%len(specs)] {
					t.Errorf("条目 %d = %+v, 期望循环使用目录", i, spec)
				}
			}
		})
	}
}

// TestMenuDemoSceneTooManyItems 8 个条目时创建失败
func TestMenuDemoSceneTooManyItems(t *testing.T) {
	_, err := NewMenuDemoScene(MenuDemoOptions{ItemCount: 8, Width: 1000, Height: 2000, Input: idleInput})
	if !errors.Is(err, layout.ErrTooManyItems) {
		t.Fatalf("期望 ErrTooManyItems, 得到 %v", err)
	}
}

// TestMenuDemoSceneSelectItem 点击条目记录标题并关闭菜单
func TestMenuDemoSceneSelectItem(t *testing.T) {
	s := newTestScene(t, 7)
	menu := s.Menu()

	if err := menu.SetOpen(true); err != nil {
		t.Fatalf("SetOpen 失败: %v", err)
	}
	for i := 0; i < 300; i++ {
		menu.Update(0.01)
	}

	// 条目 0 中心：面板 (125, 1125) + 布局 (105, 657) + 75
	if !menu.HandlePress(125+105+75, 1125+657+75) {
		t.Fatal("点击条目应该被消费")
	}
	if s.LastSelected() != "Voice" {
		t.Errorf("LastSelected = %q, 期望 Voice", s.LastSelected())
	}
	if menu.IsOpen() {
		t.Error("选中条目后菜单应该关闭")
	}
}

// TestMenuDemoSceneDebugLayout 切换调试覆盖层时通知回调
func TestMenuDemoSceneDebugLayout(t *testing.T) {
	var changes []bool
	s, err := NewMenuDemoScene(MenuDemoOptions{
		ItemCount:            4,
		Width:                1000,
		Height:               2000,
		Input:                idleInput,
		OnDebugLayoutChanged: func(enabled bool) { changes = append(changes, enabled) },
	})
	if err != nil {
		t.Fatalf("NewMenuDemoScene 失败: %v", err)
	}

	s.SetDebugLayout(true)
	s.SetDebugLayout(true)
	s.SetDebugLayout(false)

	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("回调记录 = %v, 期望 [true false]", changes)
	}
}

// TestMenuDemoSceneResize 尺寸变化转发给菜单
func TestMenuDemoSceneResize(t *testing.T) {
	s := newTestScene(t, 7)
	s.Resize(1080, 1920)

	p := s.Menu().LayoutParams()
	if p.ContainerWidth != 1080 || p.ContainerHeight != 1920 {
		t.Errorf("LayoutParams = %+v, 期望 1080x1920", p)
	}
}

// TestMenuItemViewOnSelect OnSelect 把条目信息传给回调
func TestMenuItemViewOnSelect(t *testing.T) {
	spec := config.MenuItemSpec{Title: "Scan", Color: config.MustParseColor("#FEEFD8"), Icon: utils.IconScan}

	var got config.MenuItemSpec
	view := NewMenuItemView(spec, config.MustParseColor("#A6AABD"), func(s config.MenuItemSpec) { got = s })
	view.OnSelect()
	if got != spec {
		t.Errorf("回调收到 %+v, 期望 %+v", got, spec)
	}

	// 没有回调时不 panic
	NewMenuItemView(spec, nil, nil).OnSelect()
}

// TestMenuDemoSceneItemSize 调整条目边长时重新布局并通知回调
func TestMenuDemoSceneItemSize(t *testing.T) {
	var changes []int
	s, err := NewMenuDemoScene(MenuDemoOptions{
		ItemCount:         7,
		Width:             1000,
		Height:            2000,
		Input:             idleInput,
		OnItemSizeChanged: func(size int) { changes = append(changes, size) },
	})
	if err != nil {
		t.Fatalf("NewMenuDemoScene 失败: %v", err)
	}

	s.stepItemSize(1)
	if got := s.Menu().LayoutParams().ItemSize; got != 160 {
		t.Errorf("+ 键后 ItemSize = %d, 期望 160", got)
	}
	s.stepItemSize(-2)
	if got := s.Menu().LayoutParams().ItemSize; got != 140 {
		t.Errorf("- 键后 ItemSize = %d, 期望 140", got)
	}

	// 超出范围时限制在边界，重复设置不通知
	if err := s.SetItemSize(10); err != nil {
		t.Fatalf("SetItemSize 失败: %v", err)
	}
	if err := s.SetItemSize(game.MinItemSize); err != nil {
		t.Fatalf("SetItemSize 失败: %v", err)
	}
	if got := s.Menu().LayoutParams().ItemSize; got != game.MinItemSize {
		t.Errorf("ItemSize = %d, 期望 %d", got, game.MinItemSize)
	}

	want := []int{160, 140, game.MinItemSize}
	if len(changes) != len(want) {
		t.Fatalf("回调记录 = %v, 期望 %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("回调记录 = %v, 期望 %v", changes, want)
			break
		}
	}

	// 打开后条目按新边长绘制
	menu := s.Menu()
	if err := menu.SetOpen(true); err != nil {
		t.Fatalf("SetOpen 失败: %v", err)
	}
	for i := 0; i < 300; i++ {
		menu.Update(0.01)
	}
	for _, item := range menu.Frame().Items {
		if item.Size != float64(game.MinItemSize) {
			t.Errorf("条目 %d 绘制尺寸 = %v, 期望 %d", item.Index, item.Size, game.MinItemSize)
		}
	}
}
