package animation

import (
	"image/color"

	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendColor 在 CIE-Lab 空间中插值两种颜色，t 会被限制到 [0, 1]
// 透明度单独线性插值
func BlendColor(from, to color.Color, t float64) color.NRGBA {
	t = utils.Clamp01(t)

	c1, _ := colorful.MakeColor(opaque(from))
	c2, _ := colorful.MakeColor(opaque(to))
	r, g, b := c1.BlendLab(c2, t).Clamped().RGB255()

	_, _, _, a1 := from.RGBA()
	_, _, _, a2 := to.RGBA()
	a := utils.Lerp(float64(a1>>8), float64(a2>>8), t)

	return color.NRGBA{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

// opaque 去掉透明度，go-colorful 对预乘透明色的转换会改变色相
func opaque(c color.Color) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = 0xFF
	return nrgba
}

// ScaleAlpha 按比例缩放颜色的透明度（返回预乘格式）
func ScaleAlpha(c color.Color, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}
