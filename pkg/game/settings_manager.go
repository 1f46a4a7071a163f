package game

import (
	"fmt"
	"log"

	"github.com/decker502/circlemenu/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings 持久化的显示设置
// 菜单的打开/关闭状态不持久化，每次启动都是关闭的
type DisplaySettings struct {
	// ItemSize 条目边长，0 表示使用 data/circle_menu.yaml 中的值
	ItemSize int `yaml:"itemSize"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
	// ShowLayoutDebug 是否绘制布局调试覆盖层
	ShowLayoutDebug bool `yaml:"showLayoutDebug"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		ItemSize:        0,
		Fullscreen:      false,
		ShowLayoutDebug: false,
	}
}

// 条目尺寸的允许范围（像素）
const (
	MinItemSize = 48
	MaxItemSize = 320
)

// SettingsManager 设置管理器
// 负责显示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DisplaySettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// OpenStorage 打开应用的 gdata 存储
//
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行。
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(appName); err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}
	if path := utils.GetStoragePath(appName); path != "" {
		log.Printf("[SettingsManager] 存储目录: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return manager, nil
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方判断，加载失败不影响创建
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.ItemSize = clampItemSize(loaded.ItemSize)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetItemSize 设置条目边长
//
// 0 表示恢复配置文件中的值，其余值限制在 [MinItemSize, MaxItemSize]。
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetItemSize(size int) {
	sm.settings.ItemSize = clampItemSize(size)
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowLayoutDebug 设置布局调试覆盖层
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowLayoutDebug(enabled bool) {
	sm.settings.ShowLayoutDebug = enabled
}

// clampItemSize 将条目尺寸限制在允许范围内，0 和负数表示未设置
func clampItemSize(size int) int {
	if size <= 0 {
		return 0
	}
	if size < MinItemSize {
		return MinItemSize
	}
	if size > MaxItemSize {
		return MaxItemSize
	}
	return size
}
