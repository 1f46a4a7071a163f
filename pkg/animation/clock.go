// Package animation 提供帧驱动的动画原语
//
// 所有动画值都由共享的 FrameClock 每帧推进一次（固定步长 1/TPS）：
//   - Spring：基于 harmonica 的阻尼弹簧，可在中途改变目标并保留速度
//   - Tween：固定时长 + 缓动曲线的补间，中途改变目标时从当前值重新开始
//   - Delay：可取消的延时，用于条目的错峰入场
//   - BlendColor：感知均匀的颜色插值（CIE-Lab）
//
// 包内不启动任何 goroutine，所有状态只在游戏循环中读写。
package animation

import "time"

// FrameClock 共享帧时钟
type FrameClock struct {
	now time.Duration
}

// NewFrameClock 创建从 0 开始的帧时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Advance 推进一帧，负的步长按 0 处理
func (c *FrameClock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	c.now += dt
}

// Now 自创建以来经过的时间
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// SecondsToDuration 将秒转换为 time.Duration（游戏循环使用 float64 秒）
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
