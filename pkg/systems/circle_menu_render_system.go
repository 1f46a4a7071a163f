package systems

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/decker502/circlemenu/pkg/animation"
	"github.com/decker502/circlemenu/pkg/components"
	"github.com/decker502/circlemenu/pkg/ecs"
	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调试覆盖层颜色
var (
	debugItemColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	debugRowColor  = color.RGBA{R: 64, G: 255, B: 128, A: 160}
)

// buttonIconScale 加号图标相对按钮边长的比例
const buttonIconScale = 0.4

// CircleMenuRenderSystem 菜单的合成与绘制
//
// 顶层实体（背景面板、按钮）按 ZIndex 从小到大绘制。
// 条目绘制在面板的离屏画布上，随面板一起缩放和淡入淡出，
// 画布内部同样按 ZIndex 排序，因此条目始终在背景之上、按钮之下。
type CircleMenuRenderSystem struct {
	entityManager *ecs.EntityManager

	buttonEntity  ecs.EntityID
	wrapperEntity ecs.EntityID
	itemSize      float64

	// DebugLayout 绘制条目边框与行半径
	DebugLayout bool
}

// NewCircleMenuRenderSystem 创建渲染系统
func NewCircleMenuRenderSystem(em *ecs.EntityManager, buttonEntity, wrapperEntity ecs.EntityID, itemSize float64) *CircleMenuRenderSystem {
	return &CircleMenuRenderSystem{
		entityManager: em,
		buttonEntity:  buttonEntity,
		wrapperEntity: wrapperEntity,
		itemSize:      itemSize,
	}
}

// SetItemSize 条目边长变化后同步绘制尺寸
func (s *CircleMenuRenderSystem) SetItemSize(size float64) {
	s.itemSize = size
}

// Draw 绘制整个菜单
func (s *CircleMenuRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		switch id {
		case s.wrapperEntity:
			s.drawWrapper(screen)
		case s.buttonEntity:
			s.drawButton(screen)
		}
	}

	if s.DebugLayout {
		s.drawDebugOverlay(screen)
	}
}

// drawOrder 顶层实体的绘制顺序
func (s *CircleMenuRenderSystem) drawOrder() []ecs.EntityID {
	return sortByZIndex(s.entityManager, []ecs.EntityID{s.buttonEntity, s.wrapperEntity})
}

// sortByZIndex 按 ZIndex 升序排序，层级相同时保持原顺序
func sortByZIndex(em *ecs.EntityManager, ids []ecs.EntityID) []ecs.EntityID {
	sorted := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		if ecs.HasComponent[*components.ZIndexComponent](em, id) {
			sorted = append(sorted, id)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.ZIndexComponent](em, sorted[i])
		b, _ := ecs.GetComponent[*components.ZIndexComponent](em, sorted[j])
		return a.Z < b.Z
	})
	return sorted
}

func (s *CircleMenuRenderSystem) drawWrapper(screen *ebiten.Image) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.wrapperEntity)
	if !ok {
		return
	}
	wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity)
	if !ok || wrapper.Diameter <= 0 {
		return
	}

	reveal := wrapper.Reveal.Value()
	if reveal <= 0 {
		return
	}

	a := int(wrapper.Diameter)
	if wrapper.Canvas == nil {
		wrapper.Canvas = ebiten.NewImage(a, a)
	}
	canvas := wrapper.Canvas
	canvas.Clear()

	// 左上角为半径 a/2 的圆角，其余三个角为直角
	half := float32(a) / 2
	vector.FillCircle(canvas, half, half, half, wrapper.Background, true)
	vector.DrawFilledRect(canvas, half, 0, half, float32(a), wrapper.Background, false)
	vector.DrawFilledRect(canvas, 0, half, float32(a), half, wrapper.Background, false)

	items := sortByZIndex(s.entityManager, menuItemsByIndex(s.entityManager))
	for _, id := range items {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)
		if item.Content == nil {
			continue
		}
		x := float64(item.Target.X) + item.OffsetX.Value
		y := float64(item.Target.Y) + item.OffsetY.Value
		item.Content.Draw(canvas, x, y, s.itemSize)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = wrapperTransform(pos, wrapper.Diameter, reveal)
	op.ColorScale.ScaleAlpha(float32(reveal))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(canvas, op)
}

func (s *CircleMenuRenderSystem) drawButton(screen *ebiten.Image) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonEntity)
	if !ok {
		return
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.buttonEntity)
	if !ok {
		return
	}
	btn, ok := ecs.GetComponent[*components.TriggerButtonComponent](s.entityManager, s.buttonEntity)
	if !ok {
		return
	}

	fill := animation.BlendColor(btn.ClosedColor, btn.OpenColor, btn.ColorProgress.Value)
	if btn.State == components.UIClicked {
		fill = animation.BlendColor(fill, color.Black, 0.15)
	}

	r := size.Width / 2
	cx, cy := pos.X+r, pos.Y+r
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), fill, true)
	utils.DrawAddIcon(screen, cx, cy, size.Width*buttonIconScale, btn.Rotation.Value, color.White)
}

func (s *CircleMenuRenderSystem) drawDebugOverlay(screen *ebiten.Image) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.wrapperEntity)
	if !ok {
		return
	}
	wrapper, ok := ecs.GetComponent[*components.MenuWrapperComponent](s.entityManager, s.wrapperEntity)
	if !ok {
		return
	}

	c := wrapper.Diameter / 2
	cx, cy := float32(pos.X+c), float32(pos.Y+c)
	reveal := wrapper.Reveal.Value()

	rows := map[float64]bool{}
	for _, id := range menuItemsByIndex(s.entityManager) {
		item, _ := ecs.GetComponent[*components.MenuItemComponent](s.entityManager, id)

		// 行半径（经过条目左上角）
		if !rows[item.Target.RadiusOffset] {
			rows[item.Target.RadiusOffset] = true
			vector.StrokeCircle(screen, cx, cy, float32(item.Target.RadiusOffset*reveal), 1, debugRowColor, true)
		}

		x, y, size := itemScreenRect(pos, wrapper, item, s.itemSize)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, debugItemColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d r%d %.1f°", item.Index, item.Target.Row, item.Target.AngleDeg), int(x), int(y))
	}
}
