package audio

import (
	"fmt"
	"sort"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate 与 Ebitengine 音频上下文一致
const SampleRate = beep.SampleRate(48000)

// 合成音色名称（resources.yaml 中 synth 字段的取值）
const (
	SynthShoot    = "shoot"
	SynthHit      = "hit"
	SynthGameOver = "gameover"
	SynthDisco    = "disco"
)

// discoBPM 背景循环速度
const discoBPM = 120

// ShootSound 短促的激光声：方波从 1200Hz 快速下滑到 300Hz
func ShootSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	laser := tone(1200, 300, d, 2*time.Millisecond, 80*time.Millisecond, WaveSquare, rate)
	click := tone(0, 0, 20*time.Millisecond, 0, 15*time.Millisecond, WaveNoise, rate)
	return slot(d, rate, newVolume(laser, 0.35), newVolume(click, 0.25))
}

// HitSound 命中的"叮"声：两个上行音 + 噪声爆裂
func HitSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(880, 880, 60*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, WaveTriangle, rate)
	n2 := tone(1318.51, 1318.51, 140*time.Millisecond, 2*time.Millisecond, 110*time.Millisecond, WaveTriangle, rate)
	pop := tone(0, 0, 50*time.Millisecond, 0, 45*time.Millisecond, WaveNoise, rate)
	return slot(200*time.Millisecond, rate,
		newVolume(beep.Seq(n1, n2), 0.6),
		newVolume(pop, 0.3),
	)
}

// GameOverSound 下行的三个音 + 长尾音
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 415.30, 349.23}
	var parts []beep.Streamer
	for _, f := range notes {
		parts = append(parts, tone(f, f, 220*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, WaveSquare, rate))
	}
	parts = append(parts, tone(261.63, 130.81, 700*time.Millisecond, 5*time.Millisecond, 500*time.Millisecond, WaveSaw, rate))
	return newVolume(beep.Seq(parts...), 0.4)
}

// DiscoLoop 两小节的四四拍迪斯科循环（底鼓、反拍镲、八分音符贝斯）
// 返回有限流，循环由播放端负责
func DiscoLoop(rate beep.SampleRate) beep.Streamer {
	beat := time.Minute / discoBPM
	half := beat / 2

	// A 小调的八度贝斯，每拍换一个根音
	roots := []float64{110, 110, 130.81, 130.81, 98, 98, 146.83, 123.47}

	var beats []beep.Streamer
	for _, root := range roots {
		kick := tone(150, 45, 140*time.Millisecond, time.Millisecond, 110*time.Millisecond, WaveSine, rate)
		hat := beep.Seq(
			beep.Silence(rate.N(half)),
			tone(0, 0, 35*time.Millisecond, 0, 30*time.Millisecond, WaveNoise, rate),
		)
		bass := beep.Seq(
			tone(root, root, half, 3*time.Millisecond, 60*time.Millisecond, WaveSaw, rate),
			tone(root*2, root*2, half, 3*time.Millisecond, 60*time.Millisecond, WaveSaw, rate),
		)
		beats = append(beats, slot(beat, rate,
			newVolume(kick, 0.8),
			newVolume(hat, 0.15),
			newVolume(bass, 0.25),
		))
	}
	return beep.Seq(beats...)
}

// generators 合成音色表
var generators = map[string]func(beep.SampleRate) beep.Streamer{
	SynthShoot:    ShootSound,
	SynthHit:      HitSound,
	SynthGameOver: GameOverSound,
	SynthDisco:    DiscoLoop,
}

// Names 返回所有可用的合成音色名称（已排序）
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Synthesize 按名称合成并渲染一段 PCM
func Synthesize(name string) (*PCMStream, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown synth %q", name)
	}
	stream, err := Render(gen(SampleRate), SampleRate, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize %q: %w", name, err)
	}
	return stream, nil
}
