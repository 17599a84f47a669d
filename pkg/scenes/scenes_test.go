package scenes

import (
	"testing"

	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/game"
	"github.com/decker502/discobird/pkg/systems"
	"github.com/decker502/discobird/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeAudio 记录场景发出的音频调用
type fakeAudio struct {
	sounds       []string
	music        []string
	pauses       int
	interactions int
}

func (f *fakeAudio) PlaySound(soundID string) bool {
	f.sounds = append(f.sounds, soundID)
	return true
}

func (f *fakeAudio) StartRoundMusic(musicID string) bool {
	f.music = append(f.music, musicID)
	return true
}

func (f *fakeAudio) PauseMusic()        { f.pauses++ }
func (f *fakeAudio) OnUserInteraction() { f.interactions++ }

func (f *fakeAudio) count(soundID string) int {
	n := 0
	for _, id := range f.sounds {
		if id == soundID {
			n++
		}
	}
	return n
}

type fixture struct {
	shared *Shared
	audio  *fakeAudio
	next   []utils.Pointer
}

// click 让下一帧产生一次按下
func (f *fixture) click(x, y float64) {
	f.next = append(f.next, utils.Pointer{X: x, Y: y})
}

func (f *fixture) update() {
	f.shared.SceneManager.Update(1.0 / 60)
}

func (f *fixture) state() game.ScreenState {
	return f.shared.SceneManager.State()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.DefaultGameplayConfig()
	session := game.NewSession(cfg, 99)
	audio := &fakeAudio{}

	f := &fixture{audio: audio}
	world := systems.NewWorld(audio)
	hud, err := systems.NewHUDRenderSystem(game.NewResourceManager(nil), cfg)
	if err != nil {
		t.Fatalf("NewHUDRenderSystem error: %v", err)
	}

	f.shared = &Shared{
		Session:      session,
		World:        world,
		SceneManager: game.NewSceneManager(session),
		Background:   systems.NewBackgroundRenderSystem(cfg),
		Entities:     systems.NewEntityRenderSystem(world.EntityManager),
		HUD:          hud,
		Audio:        audio,
		Input: func() []utils.Pointer {
			p := f.next
			f.next = nil
			return p
		},
	}
	Register(f.shared)
	if err := f.shared.SceneManager.Enter(game.StateStart); err != nil {
		t.Fatalf("Enter(Start) error: %v", err)
	}
	return f
}

// TestTitleClickStartsRound 标题页点击：进入游戏、重置本局、开始音乐
func TestTitleClickStartsRound(t *testing.T) {
	f := newFixture(t)
	f.update()
	if f.state() != game.StateStart {
		t.Fatalf("state = %s, want Start without input", f.state())
	}

	f.shared.Session.Score = 50
	f.click(400, 300)
	f.update()

	if f.state() != game.StatePlaying {
		t.Fatalf("state = %s, want Playing", f.state())
	}
	if f.shared.Session.Score != 0 || f.shared.Session.TimeRemaining != 60 {
		t.Errorf("round should be reset, got score=%d time=%d", f.shared.Session.Score, f.shared.Session.TimeRemaining)
	}
	if len(f.audio.music) != 1 || f.audio.music[0] != game.MusicDisco {
		t.Errorf("music = %v, want [MUSIC_DISCO]", f.audio.music)
	}
	if f.audio.interactions != 1 {
		t.Errorf("interactions = %d, want 1", f.audio.interactions)
	}
	// 开始游戏的那次点击不算射击
	if f.audio.count(game.SoundShoot) != 0 {
		t.Error("start click should not play the shoot sound")
	}
}

// TestFullRoundFlow 完整流程：开始、60 秒不点击、结束、返回标题
func TestFullRoundFlow(t *testing.T) {
	f := newFixture(t)
	f.click(400, 300)
	f.update()

	roundTicks := f.shared.Session.Config.RoundTicks()
	for i := 1; i < roundTicks; i++ {
		f.update()
		if f.state() != game.StatePlaying {
			t.Fatalf("round ended early at tick %d", i)
		}
	}
	f.update()

	if f.state() != game.StateGameOver {
		t.Fatalf("state = %s, want GameOver after %d ticks", f.state(), roundTicks)
	}
	if f.shared.Session.Score != 0 {
		t.Errorf("Score = %d, want 0", f.shared.Session.Score)
	}
	if f.audio.count(game.SoundGameOver) != 1 {
		t.Errorf("game over sound played %d times, want 1", f.audio.count(game.SoundGameOver))
	}
	if f.audio.pauses != 1 {
		t.Errorf("PauseMusic called %d times, want 1", f.audio.pauses)
	}

	// 结束页点击不射击，直接回到标题
	f.click(400, 300)
	f.update()
	if f.state() != game.StateStart {
		t.Fatalf("state = %s, want Start", f.state())
	}
	if f.audio.count(game.SoundShoot) != 0 {
		t.Error("clicks outside Playing should not shoot")
	}

	// 再开一局会重新开始音乐
	f.click(400, 300)
	f.update()
	if f.state() != game.StatePlaying || len(f.audio.music) != 2 {
		t.Errorf("second round: state=%s music=%v", f.state(), f.audio.music)
	}
	if f.shared.World.BirdCount() != 0 {
		t.Errorf("BirdCount = %d, want 0 after reset", f.shared.World.BirdCount())
	}
}

// TestPlayClickShoots 游戏中的点击播放射击音效
func TestPlayClickShoots(t *testing.T) {
	f := newFixture(t)
	f.click(400, 300)
	f.update()

	f.click(5, 5)
	f.update()

	if f.audio.count(game.SoundShoot) != 1 {
		t.Errorf("shoot sound played %d times, want 1", f.audio.count(game.SoundShoot))
	}
	if f.shared.Session.Score != 0 {
		t.Errorf("miss should not score, got %d", f.shared.Session.Score)
	}
}

// TestBackgroundTimerSurvivesReset 背景计时跨回合累积
func TestBackgroundTimerSurvivesReset(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.update()
	}
	f.click(400, 300)
	f.update()

	if f.shared.Session.BackgroundTimer != 6 {
		t.Errorf("BackgroundTimer = %d, want 6", f.shared.Session.BackgroundTimer)
	}
}

// TestNilAudio 无音频时场景仍可运行
func TestNilAudio(t *testing.T) {
	f := newFixture(t)
	f.shared.Audio = nil

	f.click(400, 300)
	f.update()
	f.shared.Session.TimeRemaining = 1
	f.shared.Session.Tick = f.shared.Session.Config.TicksPerSecond - 1
	f.update()

	if f.state() != game.StateGameOver {
		t.Errorf("state = %s, want GameOver", f.state())
	}
}

// TestSceneDraw 三个场景的绘制冒烟测试
func TestSceneDraw(t *testing.T) {
	f := newFixture(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	f.shared.SceneManager.Draw(screen)
	f.click(400, 300)
	f.update()
	for i := 0; i < 100; i++ {
		f.update()
	}
	f.shared.SceneManager.Draw(screen)

	f.shared.Session.TimeRemaining = 1
	f.shared.Session.Tick = f.shared.Session.Config.TicksPerSecond - 1
	f.update()
	if f.state() != game.StateGameOver {
		t.Fatalf("state = %s, want GameOver", f.state())
	}
	f.shared.SceneManager.Draw(screen)
}
