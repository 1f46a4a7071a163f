package utils

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 矢量图标
//
// 菜单不依赖任何位图资源，所有图标都在 size×size 的方框内用路径绘制，
// (cx, cy) 为方框中心。线宽统一取 size/12。

// 图标名称（与 data/menu_items.yaml 中的 icon 字段对应）
const (
	IconAdd      = "add"
	IconVoice    = "voice"
	IconNotes    = "notes"
	IconLink     = "link"
	IconTemplate = "template"
	IconScan     = "scan"
	IconUpload   = "upload"
)

type iconDrawer func(dst *ebiten.Image, cx, cy, size float32, clr color.Color)

var iconDrawers = map[string]iconDrawer{
	IconAdd:      func(dst *ebiten.Image, cx, cy, size float32, clr color.Color) { drawAdd(dst, cx, cy, size, 0, clr) },
	IconVoice:    drawVoice,
	IconNotes:    drawNotes,
	IconLink:     drawLink,
	IconTemplate: drawTemplate,
	IconScan:     drawScan,
	IconUpload:   drawUpload,
}

// IsKnownIcon 是否存在该名称的图标
func IsKnownIcon(name string) bool {
	_, ok := iconDrawers[name]
	return ok
}

// DrawIcon 在 (cx, cy) 处绘制边长 size 的图标
// 未知名称绘制一个实心圆点
func DrawIcon(dst *ebiten.Image, name string, cx, cy, size float64, clr color.Color) {
	draw, ok := iconDrawers[name]
	if !ok {
		vector.FillCircle(dst, float32(cx), float32(cy), float32(size/6), clr, true)
		return
	}
	draw(dst, float32(cx), float32(cy), float32(size), clr)
}

// DrawAddIcon 绘制旋转 rotationDeg 度的加号（触发按钮图标）
func DrawAddIcon(dst *ebiten.Image, cx, cy, size, rotationDeg float64, clr color.Color) {
	drawAdd(dst, float32(cx), float32(cy), float32(size), rotationDeg, clr)
}

func strokeWidth(size float32) float32 {
	return size / 12
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	strokeOp := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound, LineCap: vector.LineCapRound}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, path, strokeOp, drawOp)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, path, nil, drawOp)
}

// roundRectPath 圆角矩形
func roundRectPath(path *vector.Path, x, y, w, h, r float32) {
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(x+w, y+h-r)
	path.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(x+r, y+h)
	path.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(x, y+r)
	path.Arc(x+r, y+r, r, math.Pi, math.Pi*3/2, vector.Clockwise)
	path.Close()
}

func drawAdd(dst *ebiten.Image, cx, cy, size float32, rotationDeg float64, clr color.Color) {
	half := float64(size) * 0.35
	rad := rotationDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	var path vector.Path
	// 水平、竖直两笔，绕中心旋转
	for _, d := range [][2]float64{{half, 0}, {0, half}} {
		dx := float32(d[0]*cos - d[1]*sin)
		dy := float32(d[0]*sin + d[1]*cos)
		path.MoveTo(cx-dx, cy-dy)
		path.LineTo(cx+dx, cy+dy)
	}
	strokePath(dst, &path, strokeWidth(size)*1.2, clr)
}

func drawVoice(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	w := size * 0.3
	h := size * 0.5

	var body vector.Path
	roundRectPath(&body, cx-w/2, cy-size*0.45, w, h, w/2)
	fillPath(dst, &body, clr)

	var holder vector.Path
	r := size * 0.28
	holder.Arc(cx, cy-size*0.1, r, 0, math.Pi, vector.Clockwise)
	holder.MoveTo(cx, cy-size*0.1+r)
	holder.LineTo(cx, cy+size*0.4)
	holder.MoveTo(cx-size*0.15, cy+size*0.4)
	holder.LineTo(cx+size*0.15, cy+size*0.4)
	strokePath(dst, &holder, strokeWidth(size), clr)
}

func drawNotes(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	w, h := size*0.7, size*0.85
	x, y := cx-w/2, cy-h/2

	var path vector.Path
	roundRectPath(&path, x, y, w, h, size*0.08)
	for i := 1; i <= 3; i++ {
		ly := y + h*float32(i)/4
		path.MoveTo(x+w*0.2, ly)
		path.LineTo(x+w*0.8, ly)
	}
	strokePath(dst, &path, strokeWidth(size), clr)
}

func drawLink(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	// 两个相交的圆环沿 45° 排列，中间一笔连接
	r := size * 0.2
	offset := size * 0.14
	sw := strokeWidth(size)

	vector.StrokeCircle(dst, cx-offset, cy+offset, r, sw, clr, true)
	vector.StrokeCircle(dst, cx+offset, cy-offset, r, sw, clr, true)

	var path vector.Path
	path.MoveTo(cx-offset*1.2, cy+offset*1.2)
	path.LineTo(cx+offset*1.2, cy-offset*1.2)
	strokePath(dst, &path, sw, clr)
}

func drawTemplate(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	cell := size * 0.34
	gap := size * 0.08
	start := -cell - gap/2

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			x := cx + start + float32(col)*(cell+gap)
			y := cy + start + float32(row)*(cell+gap)
			var path vector.Path
			roundRectPath(&path, x, y, cell, cell, cell*0.2)
			if row == col {
				fillPath(dst, &path, clr)
			} else {
				strokePath(dst, &path, strokeWidth(size), clr)
			}
		}
	}
}

func drawScan(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	half := size * 0.4
	arm := size * 0.2

	var path vector.Path
	for _, c := range [][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		x, y := cx+c[0]*half, cy+c[1]*half
		path.MoveTo(x-c[0]*arm, y)
		path.LineTo(x, y)
		path.LineTo(x, y-c[1]*arm)
	}
	path.MoveTo(cx-half*0.7, cy)
	path.LineTo(cx+half*0.7, cy)
	strokePath(dst, &path, strokeWidth(size), clr)
}

func drawUpload(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	top := cy - size*0.38
	head := size * 0.2

	var path vector.Path
	path.MoveTo(cx, cy+size*0.15)
	path.LineTo(cx, top)
	path.MoveTo(cx-head, top+head)
	path.LineTo(cx, top)
	path.LineTo(cx+head, top+head)

	base := cy + size*0.38
	path.MoveTo(cx-size*0.35, base-size*0.12)
	path.LineTo(cx-size*0.35, base)
	path.LineTo(cx+size*0.35, base)
	path.LineTo(cx+size*0.35, base-size*0.12)
	strokePath(dst, &path, strokeWidth(size), clr)
}
