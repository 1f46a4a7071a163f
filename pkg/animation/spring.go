package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/decker502/circlemenu/pkg/config"
)

// Spring 标量阻尼弹簧
//
// 刚度按单位质量换算为角频率 ω = √stiffness，阻尼比直接传给 harmonica。
// 改变目标时保留当前速度，因此快速切换状态不会产生跳变。
type Spring struct {
	Value    float64
	Velocity float64
	Target   float64

	// Threshold 位置与速度都小于该值时视为静止并吸附到目标
	Threshold float64

	angularFrequency float64
	dampingRatio     float64

	// harmonica.Spring 的系数只取决于步长，步长不变时复用
	cached   harmonica.Spring
	cachedDt float64
}

// NewSpring 创建静止在 initial 的弹簧
func NewSpring(spec config.SpringSpec, initial, threshold float64) *Spring {
	return &Spring{
		Value:            initial,
		Target:           initial,
		Threshold:        threshold,
		angularFrequency: math.Sqrt(spec.Stiffness),
		dampingRatio:     spec.DampingRatio,
	}
}

// SetTarget 设置新的平衡位置，速度保持不变
func (s *Spring) SetTarget(target float64) {
	s.Target = target
}

// Snap 立即跳到 value 并停止
func (s *Spring) Snap(value float64) {
	s.Value = value
	s.Target = value
	s.Velocity = 0
}

// Step 推进 dt 秒
func (s *Spring) Step(dt float64) {
	if dt <= 0 || s.IsSettled() {
		return
	}
	if dt != s.cachedDt {
		s.cached = harmonica.NewSpring(dt, s.angularFrequency, s.dampingRatio)
		s.cachedDt = dt
	}

	s.Value, s.Velocity = s.cached.Update(s.Value, s.Velocity, s.Target)

	if math.Abs(s.Value-s.Target) < s.Threshold && math.Abs(s.Velocity) < s.Threshold {
		s.Value = s.Target
		s.Velocity = 0
	}
}

// IsSettled 是否已经静止在目标上
func (s *Spring) IsSettled() bool {
	return s.Value == s.Target && s.Velocity == 0
}
