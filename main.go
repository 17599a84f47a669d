package main

import (
	"flag"
	"log"

	"github.com/decker502/discobird/pkg/app"
	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configDir  = flag.String("config", "", "配置目录，其中的 YAML 覆盖内置的 data/ 文件")
	watch      = flag.Bool("watch", false, "监视 --config 目录并热重载玩法配置")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigDir:  *configDir,
		Watch:      *watch,
		Fullscreen: *fullscreen,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Disco Bird Shootout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
