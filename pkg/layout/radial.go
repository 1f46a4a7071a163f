// Package layout 提供圆形菜单的径向布局计算
//
// # 坐标系统
//
// 布局在"菜单包装层"的局部坐标中进行：包装层是边长 a 的正方形，
// a = containerWidth × ShapeRatio，圆心位于 (a/2, a/2)。
// 合成时包装层的圆心对齐屏幕右下角，因此只有左上四分之一（第 II 象限）可见。
//
// # 核心公式
//
//	available(k) = 90 − 12 × (k+1)           第 k 行可用角度
//	padding(k)   = 90 − available(k)          居中补偿
//	slice        = available(k) / m           m 为该行条目数
//	angle(0)     = slice/2 + padding/2
//	offsetR(k)   = r − itemSize/2 − k × itemSize × 1.5
//	rad          = (angle + 180) × π / 180
//	x, y         = x0 + offsetR·cos(rad), y0 + offsetR·sin(rad)   （截断为整数）
//
// 结果只取决于 (条目数, 容器尺寸, 条目尺寸)，与菜单是否打开无关。
//
// # 错误处理
//
// 条目数超过 config.MaxMenuItems 时返回 *TooManyItemsError，
// 调用者可使用 errors.Is(err, layout.ErrTooManyItems) 判断。
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/circlemenu/pkg/config"
)

// ErrTooManyItems 条目数超过上限（配置错误，不可恢复）
var ErrTooManyItems = errors.New("too many items provided to circle menu")

// TooManyItemsError 携带实际条目数的配置错误
type TooManyItemsError struct {
	Count int
	Max   int
}

func (e *TooManyItemsError) Error() string {
	return fmt.Sprintf("too many items provided to circle menu: got %d, max is %d", e.Count, e.Max)
}

// Is 使 errors.Is(err, ErrTooManyItems) 成立
func (e *TooManyItemsError) Is(target error) bool {
	return target == ErrTooManyItems
}

// Params 布局输入
type Params struct {
	// ContainerWidth, ContainerHeight 菜单所在区域（逻辑像素）
	// 圆的直径只取决于宽度，高度仅参与合成阶段的锚定
	ContainerWidth  int
	ContainerHeight int
	// ItemSize 单个条目的正方形边长
	ItemSize int
	// ShapeRatio 圆直径相对容器宽度的倍数
	ShapeRatio float64
	// CollapseRatio 关闭状态下向圆心收拢的比例
	CollapseRatio float64
}

// ParamsFromConfig 使用菜单配置填充比例参数
func ParamsFromConfig(cfg *config.CircleMenuConfig, width, height int) Params {
	return Params{
		ContainerWidth:  width,
		ContainerHeight: height,
		ItemSize:        cfg.ItemSize,
		ShapeRatio:      cfg.ShapeRatio,
		CollapseRatio:   cfg.CollapseRatio,
	}
}

// Target 单个条目的布局结果
type Target struct {
	Index int
	Row   int
	// AngleDeg 加象限偏移之前的角度（0~90）
	AngleDeg float64
	// RadiusOffset 该行的半径 offsetR
	RadiusOffset float64
	// X, Y 条目左上角在包装层中的位置（打开状态下的自然位置）
	X, Y int
	// CollapseX, CollapseY 关闭状态下相对自然位置的偏移
	CollapseX, CollapseY int
}

// Diameter 返回包装层边长 a
func Diameter(p Params) float64 {
	return float64(p.ContainerWidth) * p.ShapeRatio
}

// RowCount 返回 n 个条目需要的行数
func RowCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + config.MaxItemsPerRow - 1) / config.MaxItemsPerRow
}

// RowAvailableAngle 第 row 行可用的角度
func RowAvailableAngle(row int) float64 {
	return config.MaxQuadrantDeg - config.DecreasePerRowDeg*float64(row+1)
}

// RowRadius 第 row 行的半径
func RowRadius(r float64, itemSize, row int) float64 {
	size := float64(itemSize)
	return r - size/2 - float64(row)*size*config.RowSpacingFactor
}

// Compute 计算 n 个条目的布局
//
// n == 0 返回空切片；n > MaxMenuItems 返回 *TooManyItemsError 且不产生任何结果。
func Compute(n int, p Params) ([]Target, error) {
	if n > config.MaxMenuItems {
		return nil, &TooManyItemsError{Count: n, Max: config.MaxMenuItems}
	}
	if n <= 0 {
		return []Target{}, nil
	}

	a := Diameter(p)
	x0, y0 := a/2, a/2
	r := a / 2

	targets := make([]Target, 0, n)
	for row := 0; row < RowCount(n); row++ {
		start := row * config.MaxItemsPerRow
		end := min(start+config.MaxItemsPerRow, n)
		m := end - start

		offsetR := RowRadius(r, p.ItemSize, row)
		available := RowAvailableAngle(row)
		padding := config.MaxQuadrantDeg - available
		slice := available / float64(m)

		angle := slice/2 + padding/2
		for i := start; i < end; i++ {
			rad := (angle + config.CircleQuadrantOffsetDeg) * math.Pi / 180
			x := int(x0 + offsetR*math.Cos(rad))
			y := int(y0 + offsetR*math.Sin(rad))

			targets = append(targets, Target{
				Index:        i,
				Row:          row,
				AngleDeg:     angle,
				RadiusOffset: offsetR,
				X:            x,
				Y:            y,
				CollapseX:    int((x0 - float64(x)) * p.CollapseRatio),
				CollapseY:    int((y0 - float64(y)) * p.CollapseRatio),
			})
			angle += slice
		}
	}

	return targets, nil
}
