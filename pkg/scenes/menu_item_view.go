package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 条目视图的比例（相对条目边长）
const (
	itemCircleRatio = 0.7
	itemIconRatio   = 0.45
	itemTitleGap    = 0.06
)

// basicfont 的字形高度为 13 像素，按条目尺寸放大
const basicFontHeight = 13.0

// labelFace 标题字体（不依赖任何字体文件）
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// MenuItemView 单个菜单条目的默认外观
//
// 上方是彩色圆形（条目边长的 70%），圆内是黑色图标（圆直径的 45%），
// 下方居中显示标题。
type MenuItemView struct {
	Spec       config.MenuItemSpec
	TitleColor color.Color

	onSelect func(config.MenuItemSpec)
}

// NewMenuItemView 创建条目视图
// onSelect 可以为 nil
func NewMenuItemView(spec config.MenuItemSpec, titleColor color.Color, onSelect func(config.MenuItemSpec)) *MenuItemView {
	return &MenuItemView{
		Spec:       spec,
		TitleColor: titleColor,
		onSelect:   onSelect,
	}
}

// Draw 在 (x, y) 处绘制边长为 size 的条目
func (v *MenuItemView) Draw(dst *ebiten.Image, x, y, size float64) {
	diameter := size * itemCircleRatio
	cx := x + size/2
	cy := y + diameter/2

	vector.FillCircle(dst, float32(cx), float32(cy), float32(diameter/2), v.Spec.Color, true)
	utils.DrawIcon(dst, v.Spec.Icon, cx, cy, diameter*itemIconRatio, color.Black)

	if v.Spec.Title == "" {
		return
	}

	// 标题高度约为剩余空间的 60%
	scale := (size - diameter) * 0.6 / basicFontHeight
	if scale < 1 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y+diameter+size*itemTitleGap)
	op.ColorScale.ScaleWithColor(v.TitleColor)
	text.Draw(dst, v.Spec.Title, labelFace, op)
}

// OnSelect 条目被点击
func (v *MenuItemView) OnSelect() {
	log.Printf("[MenuItemView] 选中条目: %s", v.Spec.Title)
	if v.onSelect != nil {
		v.onSelect(v.Spec)
	}
}
