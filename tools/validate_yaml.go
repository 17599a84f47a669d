package main

import (
	"fmt"
	"os"

	"github.com/decker502/discobird/pkg/config"
)

// 用法: go run tools/validate_yaml.go [data/gameplay.yaml ...]
func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		files = []string{"data/gameplay.yaml"}
	}

	failed := 0
	for _, path := range files {
		cfg, err := config.LoadGameplayConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		d := cfg.Difficulty
		fmt.Printf("✅ %s: %d 秒/局, 生成间隔 %d→%d, 鸟速 %.2f→%.2f, 调色板 %d 色\n",
			path, cfg.RoundSeconds, d.InitialSpawnInterval, d.MinSpawnInterval,
			d.InitialBirdSpeed, d.MaxBirdSpeed, len(cfg.Background.Palette))
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
}
