// verify_layout 打印圆形菜单的布局结果
//
// 用于在不启动窗口的情况下核对每个条目的行、角度和坐标。
//
// 用法：
//
//	go run ./cmd/verify_layout --width 1080 --height 1920 --items 7
//	go run ./cmd/verify_layout --config data/circle_menu.yaml --items 5
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/decker502/circlemenu/pkg/config"
	"github.com/decker502/circlemenu/pkg/layout"
)

var (
	// 命令行参数
	width      = pflag.Int("width", 1080, "容器宽度（逻辑像素）")
	height     = pflag.Int("height", 1920, "容器高度（逻辑像素）")
	items      = pflag.IntP("items", "n", config.MaxMenuItems, "条目数")
	itemSize   = pflag.Int("item-size", 0, "条目边长（0=使用配置）")
	configPath = pflag.StringP("config", "c", "", "菜单配置文件（为空时使用默认值）")
)

// report 输出结构
type report struct {
	Container struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"container"`
	ItemSize int     `yaml:"itemSize"`
	Diameter float64 `yaml:"diameter"`
	Rows     int     `yaml:"rows"`
	Wrapper  point   `yaml:"wrapper"`
	Button   point   `yaml:"button"`
	Items    []item  `yaml:"items"`
}

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type item struct {
	Index    int     `yaml:"index"`
	Row      int     `yaml:"row"`
	Angle    float64 `yaml:"angle"`
	Radius   float64 `yaml:"radius"`
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	Collapse point   `yaml:"collapse"`
}

func main() {
	pflag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "verify_layout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultCircleMenuConfig()
	if *configPath != "" {
		loaded, err := config.LoadCircleMenuConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *itemSize > 0 {
		cfg.ItemSize = *itemSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	params := layout.ParamsFromConfig(cfg, *width, *height)
	targets, err := layout.Compute(*items, params)
	if err != nil {
		return err
	}

	a := int(layout.Diameter(params))
	buttonOffset := config.MaxMenuButtonSize + config.MaxMenuButtonSize/2
	var r report
	r.Container.Width = *width
	r.Container.Height = *height
	r.ItemSize = cfg.ItemSize
	r.Diameter = float64(a)
	r.Rows = layout.RowCount(*items)
	r.Wrapper = point{X: float64(*width - a/2), Y: float64(*height - a/2)}
	r.Button = point{X: float64(*width - buttonOffset), Y: float64(*height - buttonOffset)}
	for _, t := range targets {
		r.Items = append(r.Items, item{
			Index:    t.Index,
			Row:      t.Row,
			Angle:    t.AngleDeg,
			Radius:   t.RadiusOffset,
			X:        t.X,
			Y:        t.Y,
			Collapse: point{X: float64(t.CollapseX), Y: float64(t.CollapseY)},
		})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(&r)
}
