package game

import "log"

// VisibilityObserver 打开/关闭状态变化的回调
type VisibilityObserver func(open bool)

// VisibilityState 菜单的打开/关闭状态机
//
// 只有两个状态（Closed / Open），没有中间态：状态切换是瞬时的，
// 视觉上的平滑过渡由动画系统负责。
//
// 观察者按订阅顺序同步收到通知。通知过程中再次调用 Set 不会重入，
// 新值在本轮通知结束后再广播一次。通知过程中新订阅的观察者从下一轮开始收到通知，
// 被取消订阅的观察者如果还没轮到，本轮不再收到通知。
type VisibilityState struct {
	open bool

	observers []observerEntry
	nextID    int

	notifying bool
	pending   *bool
}

type observerEntry struct {
	id int
	fn VisibilityObserver
}

// NewVisibilityState 创建初始为关闭的状态机
func NewVisibilityState() *VisibilityState {
	return &VisibilityState{}
}

// IsOpen 当前是否打开
func (v *VisibilityState) IsOpen() bool {
	return v.open
}

// Set 设置为指定状态，状态未变化时不通知
// 返回状态是否发生了变化
func (v *VisibilityState) Set(open bool) bool {
	if v.notifying {
		v.pending = &open
		return open != v.open
	}
	if open == v.open {
		return false
	}

	v.open = open
	v.notify()
	return true
}

// Toggle 翻转状态
func (v *VisibilityState) Toggle() {
	if v.notifying && v.pending != nil {
		v.Set(!*v.pending)
		return
	}
	v.Set(!v.open)
}

// Subscribe 订阅状态变化，返回取消订阅函数
func (v *VisibilityState) Subscribe(fn VisibilityObserver) (unsubscribe func()) {
	v.nextID++
	id := v.nextID
	v.observers = append(v.observers, observerEntry{id: id, fn: fn})

	return func() {
		for i, o := range v.observers {
			if o.id == id {
				v.observers = append(v.observers[:i:i], v.observers[i+1:]...)
				return
			}
		}
	}
}

// notify 广播当前状态，处理通知期间产生的新值
func (v *VisibilityState) notify() {
	v.notifying = true
	for {
		snapshot := make([]observerEntry, len(v.observers))
		copy(snapshot, v.observers)
		for _, o := range snapshot {
			// 本轮中被前面的观察者取消订阅的不再通知
			if !v.subscribed(o.id) {
				continue
			}
			o.fn(v.open)
		}

		if v.pending == nil || *v.pending == v.open {
			v.pending = nil
			break
		}
		v.open = *v.pending
		v.pending = nil
		log.Printf("[VisibilityState] State changed during notification, re-broadcasting open=%v", v.open)
	}
	v.notifying = false
}

func (v *VisibilityState) subscribed(id int) bool {
	for _, o := range v.observers {
		if o.id == id {
			return true
		}
	}
	return false
}
