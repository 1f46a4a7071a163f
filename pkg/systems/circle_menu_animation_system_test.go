package systems

import (
	"testing"
)

const frame = 0.01

// TestAnimationInitiallySettled 创建后处于关闭且静止的状态
func TestAnimationInitiallySettled(t *testing.T) {
	f := newMenuFixture(t, 7, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)

	if !anim.IsSettled() {
		t.Error("初始状态应该是静止的")
	}
	if f.wrapperComponent().Reveal.Value() != 0 {
		t.Error("初始面板应该完全隐藏")
	}
	if f.buttonComponent().Rotation.Value != 0 {
		t.Error("初始按钮不应该旋转")
	}
}

// TestAnimationOpenStagger 打开时第 i 个条目在 (i+1)×15ms 后才开始移动
func TestAnimationOpenStagger(t *testing.T) {
	f := newMenuFixture(t, 7, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)

	anim.OnVisibilityChanged(true)

	// 按钮和面板立即开始
	if f.buttonComponent().Rotation.Target != 135 {
		t.Errorf("按钮旋转目标 = %v, 期望 135", f.buttonComponent().Rotation.Target)
	}
	if f.wrapperComponent().Reveal.Target() != 1 {
		t.Error("面板应该开始显示")
	}

	// t = 10ms：还没有条目到期
	anim.Update(frame)
	for i := range f.items {
		if f.item(i).Revealed {
			t.Errorf("t=10ms 时条目 %d 不应该开始移动", i)
		}
	}

	// t = 20ms：条目 0（15ms）到期
	anim.Update(frame)
	if !f.item(0).Revealed {
		t.Error("t=20ms 时条目 0 应该开始移动")
	}
	if f.item(1).Revealed {
		t.Error("t=20ms 时条目 1（30ms）不应该开始移动")
	}

	// t = 110ms：全部到期（最后一个为 105ms）
	run(anim, 9, frame)
	for i := range f.items {
		if !f.item(i).Revealed {
			t.Errorf("t=110ms 时条目 %d 应该已经开始移动", i)
		}
	}

	run(anim, 300, frame)
	if !anim.IsSettled() {
		t.Fatal("3 秒后动画应该全部静止")
	}
	for i := range f.items {
		item := f.item(i)
		if item.OffsetX.Value != 0 || item.OffsetY.Value != 0 {
			t.Errorf("条目 %d 应该停在自然位置, 偏移 = (%v, %v)", i, item.OffsetX.Value, item.OffsetY.Value)
		}
	}
	if f.buttonComponent().Rotation.Value != 135 || f.buttonComponent().ColorProgress.Value != 1 {
		t.Error("按钮应该停在打开状态")
	}
	if f.wrapperComponent().Reveal.Value() != 1 {
		t.Error("面板应该完全显示")
	}
}

// TestAnimationCloseImmediate 关闭时所有条目立即开始收拢（没有错峰）
func TestAnimationCloseImmediate(t *testing.T) {
	f := newMenuFixture(t, 7, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)
	anim.OnVisibilityChanged(true)
	run(anim, 300, frame)

	anim.OnVisibilityChanged(false)
	for i := range f.items {
		item := f.item(i)
		if item.Revealed {
			t.Errorf("条目 %d 应该立即取消显示", i)
		}
		if item.OffsetX.Target != float64(item.Target.CollapseX) || item.OffsetY.Target != float64(item.Target.CollapseY) {
			t.Errorf("条目 %d 的目标应该是收拢位置", i)
		}
	}
	if f.buttonComponent().Rotation.Target != 0 {
		t.Error("按钮应该转回 0°")
	}

	run(anim, 300, frame)
	if !anim.IsSettled() {
		t.Fatal("关闭动画应该静止")
	}
	if f.wrapperComponent().Reveal.Value() != 0 {
		t.Error("面板应该完全隐藏")
	}
	if f.item(3).OffsetX.Value != float64(f.item(3).Target.CollapseX) {
		t.Error("条目应该回到收拢位置")
	}
}

// TestAnimationRapidToggle 延时期间再次切换：只有最后一次打开的错峰生效
func TestAnimationRapidToggle(t *testing.T) {
	f := newMenuFixture(t, 7, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)

	anim.OnVisibilityChanged(true) // t=0，条目 1 计划在 30ms
	run(anim, 2, frame)            // t=20ms
	if !f.item(0).Revealed {
		t.Fatal("条目 0 应该已经开始移动")
	}

	anim.OnVisibilityChanged(false) // t=20ms
	if f.item(0).Revealed {
		t.Error("关闭后条目 0 应该立即收拢")
	}

	anim.Update(frame) // t=30ms，旧计划的条目 1 不能生效
	if f.item(1).Revealed {
		t.Error("已取消的延时不应该生效")
	}

	anim.OnVisibilityChanged(true) // t=30ms，条目 0 在 45ms，条目 1 在 60ms
	run(anim, 2, frame)            // t=50ms
	if !f.item(0).Revealed {
		t.Error("新计划中条目 0 应该在 45ms 开始移动")
	}
	if f.item(1).Revealed {
		t.Error("新计划中条目 1 要到 60ms 才开始移动")
	}

	anim.Update(frame) // t=60ms
	if !f.item(1).Revealed {
		t.Error("t=60ms 时条目 1 应该开始移动")
	}
}

// TestAnimationInterruptKeepsVelocity 中途反向不产生位置跳变
func TestAnimationInterruptKeepsVelocity(t *testing.T) {
	f := newMenuFixture(t, 1, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)

	anim.OnVisibilityChanged(true)
	run(anim, 10, frame)

	item := f.item(0)
	before := item.OffsetX.Value
	velocity := item.OffsetX.Velocity
	if velocity == 0 {
		t.Fatal("条目应该正在移动")
	}

	anim.OnVisibilityChanged(false)
	if item.OffsetX.Value != before || item.OffsetX.Velocity != velocity {
		t.Error("切换目标不应该改变当前位置和速度")
	}

	reveal := f.wrapperComponent().Reveal.Value()
	anim.Update(frame)
	if f.wrapperComponent().Reveal.Value() > reveal {
		t.Error("关闭后面板应该开始淡出")
	}
}

// TestAnimationSettledWithPendingDelay 有未到期的延时时不算静止
func TestAnimationSettledWithPendingDelay(t *testing.T) {
	f := newMenuFixture(t, 7, 1000, 2000)
	anim := NewCircleMenuAnimationSystem(f.em, f.cfg, nil, f.button, f.wrapper, false)
	anim.OnVisibilityChanged(true)
	if anim.IsSettled() {
		t.Error("刚打开时不应该是静止的")
	}
	if anim.Clock().Now() != 0 {
		t.Errorf("时钟不应该在切换时推进: %v", anim.Clock().Now())
	}
}
