// simulate 无窗口运行一局，打印分数与难度变化
//
// 用法:
//
//	go run ./cmd/simulate --seconds 60 --clicks-per-second 2 --seed 42
//
// 每次点击瞄准当前最左边的鸟，用于检查难度曲线与计分。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/decker502/discobird/pkg/game"
	"github.com/decker502/discobird/pkg/systems"
	"github.com/decker502/discobird/pkg/utils"
)

var (
	seconds         = flag.Int("seconds", 0, "模拟时长（秒），0 表示一整局")
	clicksPerSecond = flag.Float64("clicks-per-second", 0, "每秒点击次数，0 表示不点击")
	seed            = flag.Int64("seed", 1, "随机种子")
	configPath      = flag.String("config", "", "玩法配置文件（默认使用内置数值）")
	verbose         = flag.Bool("verbose", false, "显示详细日志")
)

// soundCounter 统计音效次数
type soundCounter map[string]int

func (c soundCounter) PlaySound(soundID string) bool {
	c[soundID]++
	return true
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameplayConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	sounds := soundCounter{}
	session := game.NewSession(cfg, *seed)
	world := systems.NewWorld(sounds)

	machine := game.NewStateMachine(session)
	if err := machine.Transition(game.StatePlaying); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	totalTicks := cfg.RoundTicks()
	if *seconds > 0 {
		totalTicks = *seconds * cfg.TicksPerSecond
	}
	clickEvery := 0
	if *clicksPerSecond > 0 {
		clickEvery = int(float64(cfg.TicksPerSecond) / *clicksPerSecond)
		if clickEvery < 1 {
			clickEvery = 1
		}
	}

	lastInterval := session.Difficulty.SpawnInterval
	for tick := 1; tick <= totalTicks; tick++ {
		var presses []utils.Pointer
		if clickEvery > 0 && tick%clickEvery == 0 {
			if p, ok := leftmostBird(world.EntityManager); ok {
				presses = append(presses, p)
			}
		}

		if world.Update(session, presses) {
			if err := machine.Transition(game.StateGameOver); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
			sounds.PlaySound(game.SoundGameOver)
		}
		if session.Difficulty.SpawnInterval != lastInterval {
			lastInterval = session.Difficulty.SpawnInterval
			fmt.Printf("t=%5.1fs  spawnInterval=%d  birdSpeed=%.2f  score=%d\n",
				float64(tick)/float64(cfg.TicksPerSecond), lastInterval, session.Difficulty.BirdSpeed, session.Score)
		}
		if session.State != game.StatePlaying {
			break
		}
	}

	fmt.Printf("state=%s score=%d time=%d birds=%d shots=%d hits=%d\n",
		session.State, session.Score, session.TimeRemaining, world.BirdCount(),
		sounds[game.SoundShoot], sounds[game.SoundHit])
}

// leftmostBird 最靠左且已进入画面的鸟
func leftmostBird(em *ecs.EntityManager) (utils.Pointer, bool) {
	best := utils.Pointer{}
	found := false
	for _, id := range ecs.GetEntitiesWith2[*components.BirdComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X > config.GameWindowWidth {
			continue
		}
		if !found || pos.X < best.X {
			best = utils.Pointer{X: pos.X, Y: pos.Y}
			found = true
		}
	}
	return best, found
}
