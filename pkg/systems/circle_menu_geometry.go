package systems

import (
	"github.com/decker502/circlemenu/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// 背景面板与条目共用同一个以面板圆心为原点的缩放：
// 面板局部坐标 (lx, ly) 在屏幕上的位置为
//
//	wrapperPos + c + (l − c) × reveal，c = a/2

// wrapperTransform 面板画布到屏幕的变换
func wrapperTransform(pos *components.PositionComponent, diameter, reveal float64) ebiten.GeoM {
	c := diameter / 2
	var geo ebiten.GeoM
	geo.Translate(-c, -c)
	geo.Scale(reveal, reveal)
	geo.Translate(pos.X+c, pos.Y+c)
	return geo
}

// itemScreenRect 条目当前（含动画偏移和面板缩放）在屏幕上的矩形
func itemScreenRect(
	wrapperPos *components.PositionComponent,
	wrapper *components.MenuWrapperComponent,
	item *components.MenuItemComponent,
	itemSize float64,
) (x, y, size float64) {
	reveal := wrapper.Reveal.Value()
	geo := wrapperTransform(wrapperPos, wrapper.Diameter, reveal)
	lx := float64(item.Target.X) + item.OffsetX.Value
	ly := float64(item.Target.Y) + item.OffsetY.Value
	x, y = geo.Apply(lx, ly)
	return x, y, itemSize * reveal
}
