// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/embedded"
	"github.com/decker502/discobird/pkg/game"
	"github.com/decker502/discobird/pkg/scenes"
	"github.com/decker502/discobird/pkg/systems"
	"github.com/decker502/discobird/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigDir 磁盘上的配置目录，其中的 YAML 覆盖嵌入的 data/ 文件
	ConfigDir string
	// Watch 监视 ConfigDir，修改后热重载玩法配置（需要 ConfigDir）
	Watch bool
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	session      *game.Session
	world        *systems.World

	background *systems.BackgroundRenderSystem
	hud        *systems.HUDRenderSystem

	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	watcher         *config.Watcher // 可为 nil

	verbose                  bool
	cursor                   ebiten.CursorShapeType
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.ConfigDir != "" {
		embedded.SetOverrideDir(cfg.ConfigDir)
		log.Printf("[App] Config override directory: %s", cfg.ConfigDir)
	}

	gameplay, err := config.LoadEmbeddedGameplayConfig()
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	session := game.NewSession(gameplay, cfg.Seed)

	// 设置（gdata 不可用时仅保存在内存中）
	settingsManager, err := game.NewSettingsManagerWithDefaults(
		game.OpenSettingsStorage(game.AppName), game.SettingsDefaults(gameplay.Audio))
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(game.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	runner := game.NewAudioTaskRunner(context.Background(), 0)
	audioManager := game.NewAudioManager(resourceManager, settingsManager, runner)
	audioManager.SetReadyFunc(audioContext.IsReady)
	log.Printf("[App] AudioManager initialized")

	world := systems.NewWorld(audioManager)
	background := systems.NewBackgroundRenderSystem(gameplay)
	hud, err := systems.NewHUDRenderSystem(resourceManager, gameplay)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager(session)
	scenes.Register(&scenes.Shared{
		Session:      session,
		World:        world,
		SceneManager: sceneManager,
		Background:   background,
		Entities:     systems.NewEntityRenderSystem(world.EntityManager),
		HUD:          hud,
		Audio:        audioManager,
		Input:        utils.JustPressedPointers,
	})
	if err := sceneManager.Enter(game.StateStart); err != nil {
		return nil, err
	}

	a := &App{
		sceneManager:    sceneManager,
		session:         session,
		world:           world,
		background:      background,
		hud:             hud,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		cursor:          ebiten.CursorShapeDefault,
	}

	if cfg.Watch {
		if cfg.ConfigDir == "" {
			log.Printf("[App] Warning: --watch requires --config, hot reload disabled")
		} else if watcher, err := config.NewWatcher(cfg.ConfigDir); err != nil {
			log.Printf("[App] Warning: Failed to watch %s: %v", cfg.ConfigDir, err)
		} else {
			a.watcher = watcher
			log.Printf("[App] Watching %s for config changes", cfg.ConfigDir)
		}
	}

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音乐
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audioManager.ToggleMusic(game.MusicDisco)
	}

	a.pollConfig()

	deltaTime := 1.0 / float64(a.session.Config.TicksPerSecond)
	a.sceneManager.Update(deltaTime)

	a.updateCursor()
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!a.settingsManager.GetSettings().Fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// pollConfig 取出监视器的变化并重载玩法配置
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}

	select {
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Printf("[App] Warning: config watcher: %v", err)
		}
	default:
	}

	changed := a.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Printf("[App] Config changed: %v", changed)

	cfg, err := config.LoadEmbeddedGameplayConfig()
	if err != nil {
		log.Printf("[App] Warning: reload rejected, keeping current config: %v", err)
		return
	}
	a.applyConfig(cfg)
}

// applyConfig 在游戏主循环中替换配置
func (a *App) applyConfig(cfg *config.GameplayConfig) {
	a.session.ApplyConfig(cfg)
	a.background.SetConfig(cfg)
	a.hud.SetConfig(cfg)
	log.Printf("[App] Gameplay config reloaded")
}

// updateCursor 游戏中显示准星，其他屏幕显示默认光标
func (a *App) updateCursor() {
	shape := cursorFor(a.sceneManager.State())
	if shape == a.cursor {
		return
	}
	ebiten.SetCursorShape(shape)
	a.cursor = shape
}

func cursorFor(state game.ScreenState) ebiten.CursorShapeType {
	if state == game.StatePlaying {
		return ebiten.CursorShapeCrosshair
	}
	return ebiten.CursorShapeDefault
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Session 返回当前会话
func (a *App) Session() *game.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 停止监视器与音频，保存设置
// 游戏窗口关闭后调用
func (a *App) Close() error {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: watcher close: %v", err)
		}
	}
	a.audioManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
