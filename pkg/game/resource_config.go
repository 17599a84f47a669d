package game

// ResourceConfigPath 资源配置在嵌入文件系统中的路径
const ResourceConfigPath = "data/resources.yaml"

// 音频资源 ID
const (
	SoundShoot    = "SOUND_SHOOT"
	SoundHit      = "SOUND_HIT"
	SoundGameOver = "SOUND_GAMEOVER"
	MusicDisco    = "MUSIC_DISCO"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    sounds: [...]
//	    music: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
// Sounds are one-shot effects; music entries are looped when played.
type ResourceGroup struct {
	Sounds []SoundResource `yaml:"sounds"`
	Music  []SoundResource `yaml:"music"`
}

// SoundResource represents a single sound/audio resource definition.
//
// Fields:
//   - ID: Unique identifier for the sound (e.g., "SOUND_HIT")
//   - Path: Relative path from base_path to the audio file (.mp3/.ogg/.wav)
//   - Synth: Built-in synthesized voice used when the file is missing (optional,
//     defaults to the voice registered for the ID)
//
// Example:
//   - id: SOUND_HIT
//     path: sounds/hit.wav
type SoundResource struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Synth string `yaml:"synth,omitempty"`
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Examples:
//
//	buildFullPath("assets", "sounds/hit.wav")  -> "assets/sounds/hit.wav"
//	buildFullPath("", "sounds/hit.wav")        -> "sounds/hit.wav"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
