package config

// 窗口与渲染相关常量
//
// 逻辑分辨率 = 窗口尺寸 × RenderScale，菜单的全部几何参数（条目 150px、按钮 160px）
// 都以逻辑像素表达，相当于 xxhdpi 手机上的物理像素。
const (
	// DefaultWindowWidth 桌面端默认窗口宽度（竖屏手机比例）
	DefaultWindowWidth = 540
	// DefaultWindowHeight 桌面端默认窗口高度
	DefaultWindowHeight = 960
	// RenderScale 逻辑像素与窗口像素之比
	RenderScale = 2.0
	// TPS 每秒逻辑帧数，动画使用固定步长 1/TPS
	TPS = 60
)

// 资源路径
const (
	CircleMenuConfigPath = "data/circle_menu.yaml"
	MenuItemsConfigPath  = "data/menu_items.yaml"
)
