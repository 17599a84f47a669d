package game

import (
	"fmt"
	"log"
	"sync"
)

// AudioPlayer 播放器接口，*audio.Player 满足该接口
type AudioPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
}

// PlayerProvider 按资源 ID 提供播放器，由 ResourceManager 实现
type PlayerProvider interface {
	SoundPlayer(resourceID string) (AudioPlayer, error)
	MusicPlayer(resourceID string) (AudioPlayer, error)
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 音乐播放失败时记录待播放曲目，下次用户点击时重试
//
// 音效通过 AudioTaskRunner 异步播放；音乐操作同步执行。
type AudioManager struct {
	mu sync.Mutex

	provider        PlayerProvider
	settingsManager *SettingsManager // 可为 nil
	runner          *AudioTaskRunner // 为 nil 时音效同步播放
	ready           func() bool      // 音频设备是否就绪，可为 nil

	currentMusic   AudioPlayer
	currentMusicID string
	pendingMusicID string // 播放失败待重试的音乐
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - provider: 播放器来源（通常是 ResourceManager）
//   - sm: SettingsManager 实例，可为 nil
//   - runner: 音效任务执行器，可为 nil
func NewAudioManager(provider PlayerProvider, sm *SettingsManager, runner *AudioTaskRunner) *AudioManager {
	return &AudioManager{
		provider:        provider,
		settingsManager: sm,
		runner:          runner,
	}
}

// SetReadyFunc 设置音频设备就绪检测（通常是 audio.Context.IsReady）
func (am *AudioManager) SetReadyFunc(ready func() bool) {
	am.mu.Lock()
	am.ready = ready
	am.mu.Unlock()
}

// PlaySound 播放音效
// 音效使用 SoundVolume 控制音量，每次从头播放
//
// 返回：
//   - bool: 是否已提交播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	volume := am.getSoundVolume()
	play := func() error {
		player, err := am.provider.SoundPlayer(soundID)
		if err != nil {
			return fmt.Errorf("sound %s: %w", soundID, err)
		}
		player.SetVolume(volume)
		if err := player.Rewind(); err != nil {
			return fmt.Errorf("rewind sound %s: %w", soundID, err)
		}
		player.Play()
		return nil
	}

	if am.runner == nil {
		if err := play(); err != nil {
			log.Printf("[AudioManager] Warning: %v", err)
			return false
		}
		return true
	}
	return am.runner.Submit(soundID, play)
}

// PlayMusic 播放背景音乐（循环）
// 同一首音乐已在播放时不重复播放；暂停中的同一首音乐从暂停处继续
// 设备未就绪或加载失败时记录为待播放，OnUserInteraction 时重试
func (am *AudioManager) PlayMusic(musicID string) bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.playMusicLocked(musicID)
}

func (am *AudioManager) playMusicLocked(musicID string) bool {
	if !am.musicEnabled() {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	if am.ready != nil && !am.ready() {
		am.pendingMusicID = musicID
		log.Printf("[AudioManager] Audio device not ready, music %s deferred", musicID)
		return false
	}

	player := am.currentMusic
	if am.currentMusicID != musicID || player == nil {
		if am.currentMusic != nil {
			am.currentMusic.Pause()
		}
		var err error
		player, err = am.provider.MusicPlayer(musicID)
		if err != nil {
			am.pendingMusicID = musicID
			log.Printf("[AudioManager] Warning: Failed to load music %s: %v", musicID, err)
			return false
		}
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	am.pendingMusicID = ""

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// OnUserInteraction 用户点击时调用，重试待播放的音乐
func (am *AudioManager) OnUserInteraction() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.pendingMusicID == "" {
		return
	}
	am.playMusicLocked(am.pendingMusicID)
}

// StartRoundMusic 新一局开始
// 音乐正在播放则从头开始，否则播放或恢复
// 开局点击总会打开音乐，即使之前用 M 键关闭过
func (am *AudioManager) StartRoundMusic(musicID string) bool {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		if err := am.currentMusic.Rewind(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
		}
		return true
	}
	am.setMusicEnabledLocked(true)
	return am.playMusicLocked(musicID)
}

// RestartMusic 从头播放当前音乐
func (am *AudioManager) RestartMusic() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.currentMusic == nil {
		return
	}
	if err := am.currentMusic.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", am.currentMusicID, err)
	}
	if am.musicEnabled() {
		am.currentMusic.Play()
	}
}

// StopMusic 停止当前背景音乐并丢弃待播放请求
func (am *AudioManager) StopMusic() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
	am.pendingMusicID = ""
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.pendingMusicID = ""
}

// ResumeMusic 恢复当前背景音乐
func (am *AudioManager) ResumeMusic() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.currentMusic != nil && am.musicEnabled() {
		am.currentMusic.Play()
	}
}

// ToggleMusic M 键：按当前播放状态切换音乐并保存设置
// 没有音乐在播放时播放 musicID（或恢复当前音乐），否则暂停
//
// 返回：
//   - bool: 切换后音乐是否开启
func (am *AudioManager) ToggleMusic(musicID string) bool {
	am.mu.Lock()
	defer am.mu.Unlock()

	enabled := am.currentMusic == nil || !am.currentMusic.IsPlaying()
	am.setMusicEnabledLocked(enabled)

	if enabled {
		am.playMusicLocked(musicID)
	} else {
		am.currentMusic.Pause()
		am.pendingMusicID = ""
	}

	log.Printf("[AudioManager] Music toggled: enabled=%v", enabled)
	return enabled
}

// setMusicEnabledLocked 写入音乐开关，变化时保存设置
func (am *AudioManager) setMusicEnabledLocked(enabled bool) {
	if am.settingsManager == nil || am.settingsManager.GetSettings().MusicEnabled == enabled {
		return
	}
	am.settingsManager.SetMusicEnabled(enabled)
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
}

// IsMusicPlaying 当前音乐是否在播放
func (am *AudioManager) IsMusicPlaying() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

// PendingMusic 待重试的音乐 ID，没有时为空
func (am *AudioManager) PendingMusic() string {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.pendingMusicID
}

// SetMusicVolume 设置音乐音量，立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.getMusicVolume())
	}
}

// SetSoundVolume 设置音效音量，影响后续播放的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// Close 停止音乐并关闭音效执行器
func (am *AudioManager) Close() {
	am.StopMusic()
	if am.runner != nil {
		if err := am.runner.Close(); err != nil {
			log.Printf("[AudioManager] Warning: audio runner: %v", err)
		}
	}
}

func (am *AudioManager) musicEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().MusicEnabled
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
