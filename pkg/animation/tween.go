package animation

import (
	"time"

	"github.com/decker502/circlemenu/pkg/utils"
)

// Tween 固定时长的补间动画
//
// AnimateTo 从当前值出发重新计时，因此中途反向不会跳变。
type Tween struct {
	from     float64
	to       float64
	value    float64
	duration time.Duration
	elapsed  time.Duration
	easing   utils.EasingFunc
	running  bool
}

// NewTween 创建静止在 initial 的补间
func NewTween(initial float64, duration time.Duration, easing utils.EasingFunc) *Tween {
	if easing == nil {
		easing = utils.EaseLinear
	}
	return &Tween{
		from:     initial,
		to:       initial,
		value:    initial,
		duration: duration,
		easing:   easing,
	}
}

// AnimateTo 开始向 target 过渡；目标未变化时不重新计时
func (t *Tween) AnimateTo(target float64) {
	if target == t.to && (t.running || t.value == target) {
		return
	}
	t.from = t.value
	t.to = target
	t.elapsed = 0
	t.running = t.from != t.to
	if !t.running {
		t.value = target
	}
}

// Step 推进 dt
func (t *Tween) Step(dt time.Duration) {
	if !t.running {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.value = t.to
		t.running = false
		return
	}
	progress := float64(t.elapsed) / float64(t.duration)
	t.value = utils.Lerp(t.from, t.to, t.easing(progress))
}

// Value 当前值
func (t *Tween) Value() float64 {
	return t.value
}

// Target 当前目标
func (t *Tween) Target() float64 {
	return t.to
}

// IsRunning 是否仍在过渡中
func (t *Tween) IsRunning() bool {
	return t.running
}
