package animation

import "time"

// Delay 可取消的帧驱动延时
//
// 同一时刻最多只有一个计划：重新 Schedule 会覆盖旧的截止时间，Cancel 丢弃尚未到期的计划。
// 状态在延时期间再次翻转时，过期的目标永远不会生效。
type Delay struct {
	deadline time.Duration
	armed    bool
}

// Schedule 在 now+delay 时到期，覆盖尚未到期的旧计划
func (d *Delay) Schedule(now, delay time.Duration) {
	d.deadline = now + delay
	d.armed = true
}

// Cancel 取消尚未到期的计划
func (d *Delay) Cancel() {
	d.armed = false
}

// Pending 是否有尚未到期的计划
func (d *Delay) Pending() bool {
	return d.armed
}

// Due 到期时返回 true 并解除计划（每个计划只会触发一次）
func (d *Delay) Due(now time.Duration) bool {
	if !d.armed || now < d.deadline {
		return false
	}
	d.armed = false
	return true
}
