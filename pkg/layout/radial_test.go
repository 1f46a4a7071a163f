package layout

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/decker502/circlemenu/pkg/config"
)

func testParams(width, itemSize int) Params {
	return Params{
		ContainerWidth:  width,
		ContainerHeight: width * 2,
		ItemSize:        itemSize,
		ShapeRatio:      1.75,
		CollapseRatio:   0.4,
	}
}

// TestComputeItemCounts 测试 0~7 个条目成功，8 个条目失败
func TestComputeItemCounts(t *testing.T) {
	p := testParams(1000, 150)

	for n := 0; n <= config.MaxMenuItems; n++ {
		targets, err := Compute(n, p)
		if err != nil {
			t.Errorf("Compute(%d) error: %v", n, err)
			continue
		}
		if len(targets) != n {
			t.Errorf("Compute(%d) returned %d targets", n, len(targets))
		}
		for i, tg := range targets {
			if tg.Index != i {
				t.Errorf("Compute(%d): target %d has Index %d", n, i, tg.Index)
			}
		}
	}

	targets, err := Compute(8, p)
	if err == nil {
		t.Fatal("Compute(8) should fail")
	}
	if targets != nil {
		t.Errorf("Compute(8) should not return targets, got %v", targets)
	}
	if !errors.Is(err, ErrTooManyItems) {
		t.Errorf("error should match ErrTooManyItems: %v", err)
	}
	var tooMany *TooManyItemsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("error should be *TooManyItemsError: %T", err)
	}
	if tooMany.Count != 8 || tooMany.Max != 7 {
		t.Errorf("TooManyItemsError = %+v", tooMany)
	}
}

// TestComputeEmpty 测试 0 个条目返回空切片而不是 nil
func TestComputeEmpty(t *testing.T) {
	targets, err := Compute(0, testParams(1000, 150))
	if err != nil {
		t.Fatalf("Compute(0) error: %v", err)
	}
	if targets == nil || len(targets) != 0 {
		t.Errorf("Compute(0) = %#v, want empty slice", targets)
	}
}

// TestSingleRowSlices 测试单行内等分角度、总和不超过 90°、关于中线对称
func TestSingleRowSlices(t *testing.T) {
	for n := 1; n <= config.MaxItemsPerRow; n++ {
		targets, err := Compute(n, testParams(1000, 150))
		if err != nil {
			t.Fatalf("Compute(%d) error: %v", n, err)
		}

		available := RowAvailableAngle(0)
		slice := available / float64(n)
		if slice*float64(n) > 90 {
			t.Errorf("n=%d: slices sum %v exceeds 90", n, slice*float64(n))
		}

		for i := 1; i < n; i++ {
			step := targets[i].AngleDeg - targets[i-1].AngleDeg
			if math.Abs(step-slice) > 1e-9 {
				t.Errorf("n=%d: step %d = %v, want %v", n, i, step, slice)
			}
		}

		// 填充后的中线为 45°，对称的两个条目角度之和为 90°
		for i := 0; i < n; i++ {
			sum := targets[i].AngleDeg + targets[n-1-i].AngleDeg
			if math.Abs(sum-90) > 1e-9 {
				t.Errorf("n=%d: angle[%d]+angle[%d] = %v, want 90", n, i, n-1-i, sum)
			}
		}
	}
}

// TestSingleItemCentered 测试单个条目位于行中央
func TestSingleItemCentered(t *testing.T) {
	targets, _ := Compute(1, testParams(1000, 150))
	if targets[0].AngleDeg != 45 {
		t.Errorf("single item angle = %v, want 45", targets[0].AngleDeg)
	}
	if targets[0].X != targets[0].Y {
		t.Errorf("single item should sit on the diagonal, got (%d, %d)", targets[0].X, targets[0].Y)
	}
}

// TestRowRadiusDecreasing 测试行半径严格递减
func TestRowRadiusDecreasing(t *testing.T) {
	for _, itemSize := range []int{1, 50, 150, 160} {
		for row := 0; row < 3; row++ {
			if RowRadius(875, itemSize, row+1) >= RowRadius(875, itemSize, row) {
				t.Errorf("itemSize=%d: offsetR(%d) >= offsetR(%d)", itemSize, row+1, row)
			}
		}
	}
}

// TestComputeDeterministic 测试相同输入得到相同输出
func TestComputeDeterministic(t *testing.T) {
	p := testParams(1080, 160)
	first, err := Compute(7, p)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	second, _ := Compute(7, p)
	if !reflect.DeepEqual(first, second) {
		t.Error("Compute should be deterministic")
	}
}

// TestScenarioSevenItems 1000 宽、150 条目、7 个条目 → 4+3 两行
func TestScenarioSevenItems(t *testing.T) {
	targets, err := Compute(7, testParams(1000, 150))
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if RowCount(7) != 2 {
		t.Fatalf("RowCount(7) = %d, want 2", RowCount(7))
	}
	if RowAvailableAngle(0) != 78 || RowAvailableAngle(1) != 66 {
		t.Errorf("available angles = %v, %v; want 78, 66", RowAvailableAngle(0), RowAvailableAngle(1))
	}

	want := []Target{
		{Index: 0, Row: 0, AngleDeg: 15.75, RadiusOffset: 800, X: 105, Y: 657, CollapseX: 308, CollapseY: 87},
		{Index: 1, Row: 0, AngleDeg: 35.25, RadiusOffset: 800, X: 221, Y: 413, CollapseX: 261, CollapseY: 184},
		{Index: 2, Row: 0, AngleDeg: 54.75, RadiusOffset: 800, X: 413, Y: 221, CollapseX: 184, CollapseY: 261},
		{Index: 3, Row: 0, AngleDeg: 74.25, RadiusOffset: 800, X: 657, Y: 105, CollapseX: 87, CollapseY: 308},
		{Index: 4, Row: 1, AngleDeg: 23, RadiusOffset: 575, X: 345, Y: 650, CollapseX: 212, CollapseY: 90},
		{Index: 5, Row: 1, AngleDeg: 45, RadiusOffset: 575, X: 468, Y: 468, CollapseX: 162, CollapseY: 162},
		{Index: 6, Row: 1, AngleDeg: 67, RadiusOffset: 575, X: 650, Y: 345, CollapseX: 90, CollapseY: 212},
	}

	for i, w := range want {
		got := targets[i]
		if got.Index != w.Index || got.Row != w.Row || got.X != w.X || got.Y != w.Y ||
			got.CollapseX != w.CollapseX || got.CollapseY != w.CollapseY {
			t.Errorf("target %d = %+v, want %+v", i, got, w)
		}
		if math.Abs(got.AngleDeg-w.AngleDeg) > 1e-9 || math.Abs(got.RadiusOffset-w.RadiusOffset) > 1e-9 {
			t.Errorf("target %d angle/radius = %v/%v, want %v/%v", i, got.AngleDeg, got.RadiusOffset, w.AngleDeg, w.RadiusOffset)
		}
	}
}

// TestItemsInVisibleQuadrant 测试所有条目都落在包装层的左上象限
func TestItemsInVisibleQuadrant(t *testing.T) {
	p := testParams(1080, 160)
	targets, _ := Compute(7, p)
	center := int(Diameter(p) / 2)

	for _, tg := range targets {
		if tg.X >= center || tg.Y >= center {
			t.Errorf("target %d at (%d, %d) is outside the visible quadrant (center %d)", tg.Index, tg.X, tg.Y, center)
		}
		if tg.CollapseX <= 0 || tg.CollapseY <= 0 {
			t.Errorf("target %d collapse (%d, %d) should point towards the corner", tg.Index, tg.CollapseX, tg.CollapseY)
		}
	}
}

// TestComputeDependsOnSize 测试容器或条目尺寸变化会改变布局
func TestComputeDependsOnSize(t *testing.T) {
	base, _ := Compute(4, testParams(1000, 150))
	wider, _ := Compute(4, testParams(1200, 150))
	bigger, _ := Compute(4, testParams(1000, 200))

	if reflect.DeepEqual(base, wider) {
		t.Error("layout should change with container width")
	}
	if reflect.DeepEqual(base, bigger) {
		t.Error("layout should change with item size")
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultCircleMenuConfig()
	p := ParamsFromConfig(cfg, 1080, 1920)

	if p.ItemSize != cfg.ItemSize || p.ShapeRatio != cfg.ShapeRatio || p.CollapseRatio != cfg.CollapseRatio {
		t.Errorf("ParamsFromConfig = %+v", p)
	}
	if Diameter(p) != 1890 {
		t.Errorf("Diameter = %v, want 1890", Diameter(p))
	}
}
