package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 超出范围的输入会先被限制到 [0, 1]。
//
// 参考：https://easings.net/ 以及 Material Design 的标准曲线

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// CubicBezier 返回由控制点 (x1, y1)、(x2, y2) 定义的缓动曲线
// 起点 (0,0)、终点 (1,1) 固定，与 CSS cubic-bezier() 的定义一致
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		t = Clamp01(t)
		if t == 0 || t == 1 {
			return t
		}
		s := solveBezierX(t, x1, x2)
		return bezierCoord(s, y1, y2)
	}
}

// LinearOutSlowIn 减速曲线 cubic-bezier(0, 0, 0.2, 1)
// 元素进入屏幕时使用：以全速开始，逐渐减速到静止
var LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)

// bezierCoord 一维三次贝塞尔 B(s)，端点为 0 和 1
func bezierCoord(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

// bezierSlope B'(s)
func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveBezierX 求解 B_x(s) = x 的参数 s
// 先用牛顿迭代，斜率过小时退化为二分
func solveBezierX(x, x1, x2 float64) float64 {
	const epsilon = 1e-7

	s := x
	for i := 0; i < 8; i++ {
		diff := bezierCoord(s, x1, x2) - x
		if math.Abs(diff) < epsilon {
			return s
		}
		slope := bezierSlope(s, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s = Clamp01(s - diff/slope)
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 64; i++ {
		v := bezierCoord(s, x1, x2)
		if math.Abs(v-x) < epsilon {
			return s
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
