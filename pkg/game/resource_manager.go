package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	synth "github.com/decker502/discobird/internal/audio"
	"github.com/decker502/discobird/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"gopkg.in/yaml.v3"
)

// defaultSynth 资源 ID 对应的内置合成音色
var defaultSynth = map[string]string{
	SoundShoot:    synth.SynthShoot,
	SoundHit:      synth.SynthHit,
	SoundGameOver: synth.SynthGameOver,
	MusicDisco:    synth.SynthDisco,
}

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching for audio players and font faces.
//
// Audio resources are looked up by ID in data/resources.yaml. When the file on
// disk is missing or cannot be decoded, the resource falls back to a voice
// synthesized by internal/audio, so the game always has sound.
//
// Music players are cached and reused. Sound effects cache only their decoded
// PCM; every SoundPlayer call returns a new player, so rapid shots overlap
// instead of cutting each other off.
//
// Audio players may be requested from the audio task goroutine, so the caches
// are guarded by a mutex.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig(ResourceConfigPath); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
type ResourceManager struct {
	mu            sync.Mutex
	audioCache    map[string]*audio.Player    // Cache for loaded music players: path or synth key -> Player
	soundCache    map[string][]byte           // Cache for decoded sound effect PCM: path or synth key -> bytes
	audioContext  *audio.Context              // Global audio context for audio decoding
	fontSource    *text.GoTextFaceSource      // Parsed bold UI font
	fontFaceCache map[float64]*text.GoTextFace // Cache for text faces keyed by size

	// YAML resource configuration
	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
	synthMap    map[string]string // Resource ID -> synth voice name
	musicIDs    map[string]bool   // Resource IDs declared as music
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio playback and should be
// created once at game startup with a sample rate of 48000 Hz.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	rm := &ResourceManager{
		audioCache:    make(map[string]*audio.Player),
		soundCache:    make(map[string][]byte),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		synthMap:      make(map[string]string),
		musicIDs:      make(map[string]bool),
	}
	for id, name := range defaultSynth {
		rm.synthMap[id] = name
	}
	rm.musicIDs[MusicDisco] = true
	return rm
}

// LoadResourceConfig loads and parses the YAML resource configuration through
// the embedded package (an on-disk override directory takes precedence).
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.ParseResourceConfig(data)
}

// ParseResourceConfig parses resource configuration data and rebuilds the ID lookup tables.
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config: %w", err)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	SOUND_HIT   -> assets/sounds/hit.wav
//	MUSIC_DISCO -> assets/sounds/disco_music.mp3
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	add := func(res SoundResource, music bool) {
		if res.ID == "" {
			return
		}
		if res.Path != "" {
			fullPath := buildFullPath(rm.config.BasePath, res.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg"
			}
			rm.resourceMap[res.ID] = fullPath
		}
		if res.Synth != "" {
			rm.synthMap[res.ID] = res.Synth
		}
		if music {
			rm.musicIDs[res.ID] = true
		}
	}

	for _, group := range rm.config.Groups {
		for _, sound := range group.Sounds {
			add(sound, false)
		}
		for _, music := range group.Music {
			add(music, true)
		}
	}
}

// ResourcePath returns the file path configured for a resource ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// IsMusic reports whether the resource ID is declared as looping music.
func (rm *ResourceManager) IsMusic(resourceID string) bool {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.musicIDs[resourceID]
}

// decodeFile reads an audio file and decodes it by extension.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg), WAV (.wav).
func decodeFile(path string) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// LoadAudio loads a music file and wraps it in an infinite loop.
// The player is cached by path.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.loadFileLocked(path)
}

// LoadSoundEffect returns a new one-shot player for a sound file.
// The decoded PCM is cached by path; the player is not.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	data, err := rm.loadFileBytesLocked(path)
	if err != nil {
		return nil, err
	}
	return rm.newOneShotLocked(data)
}

func (rm *ResourceManager) loadFileLocked(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context")
	}

	stream, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// loadFileBytesLocked decodes a sound file once and caches its PCM.
func (rm *ResourceManager) loadFileBytesLocked(path string) ([]byte, error) {
	if data, exists := rm.soundCache[path]; exists {
		return data, nil
	}

	stream, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}

	rm.soundCache[path] = data
	return data, nil
}

// newOneShotLocked creates an independent player over cached PCM.
func (rm *ResourceManager) newOneShotLocked(data []byte) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context")
	}
	return rm.audioContext.NewPlayerFromBytes(data), nil
}

// LoadSynth renders a built-in voice and creates a player for it.
// Looping players are cached per voice; one-shot calls return a new player
// over the cached rendering.
func (rm *ResourceManager) LoadSynth(name string, loop bool) (*audio.Player, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if loop {
		return rm.loadSynthLoopLocked(name)
	}
	data, err := rm.loadSynthBytesLocked(name)
	if err != nil {
		return nil, err
	}
	return rm.newOneShotLocked(data)
}

func (rm *ResourceManager) loadSynthLoopLocked(name string) (*audio.Player, error) {
	key := "synth:" + name + ":loop"
	if cachedPlayer, exists := rm.audioCache[key]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context")
	}

	pcm, err := synth.Synthesize(name)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(pcm, pcm.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for synth %s: %w", name, err)
	}

	rm.audioCache[key] = player
	return player, nil
}

// loadSynthBytesLocked renders a voice once and caches its PCM.
func (rm *ResourceManager) loadSynthBytesLocked(name string) ([]byte, error) {
	key := "synth:" + name
	if data, exists := rm.soundCache[key]; exists {
		return data, nil
	}

	pcm, err := synth.Synthesize(name)
	if err != nil {
		return nil, err
	}

	data := pcm.Bytes()
	rm.soundCache[key] = data
	return data, nil
}

// soundBytesLocked resolves a resource ID to decoded PCM: the configured file
// first, then the synthesized fallback.
func (rm *ResourceManager) soundBytesLocked(resourceID string) ([]byte, error) {
	if path, ok := rm.resourceMap[resourceID]; ok {
		data, err := rm.loadFileBytesLocked(path)
		if err == nil {
			return data, nil
		}
		log.Printf("[ResourceManager] Warning: %s: %v (using synthesized audio)", resourceID, err)
	}

	name, ok := rm.synthMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("audio resource %s not found", resourceID)
	}
	return rm.loadSynthBytesLocked(name)
}

// SoundPlayer returns a new one-shot player for the resource ID.
// Implements PlayerProvider.
func (rm *ResourceManager) SoundPlayer(resourceID string) (AudioPlayer, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	data, err := rm.soundBytesLocked(resourceID)
	if err != nil {
		return nil, err
	}
	player, err := rm.newOneShotLocked(data)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// MusicPlayer returns the cached looping player for the resource ID,
// falling back to the synthesized voice when the file cannot be used.
// Implements PlayerProvider.
func (rm *ResourceManager) MusicPlayer(resourceID string) (AudioPlayer, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if path, ok := rm.resourceMap[resourceID]; ok {
		player, err := rm.loadFileLocked(path)
		if err == nil {
			return player, nil
		}
		log.Printf("[ResourceManager] Warning: %s: %v (using synthesized audio)", resourceID, err)
	}

	name, ok := rm.synthMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("audio resource %s not found", resourceID)
	}
	player, err := rm.loadSynthLoopLocked(name)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded music player from the cache.
// Returns nil if the path has not been loaded yet.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.audioCache[path]
}

// LoadFont returns the bold UI face at the given size.
// The Go Bold font is parsed once; faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
