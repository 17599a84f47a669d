package particle

import (
	"math"
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestParseRange_FixedValue tests parsing of fixed value format
func TestParseRange_FixedValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"Integer", "1500", 1500},
		{"Float", "3.14", 3.14},
		{"Negative", "-10.5", -10.5},
		{"Zero", "0", 0},
		{"Bracketed single", "[5]", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.input, err)
			}
			if !r.IsFixed() || r.Min != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want fixed %v", tt.input, r, tt.want)
			}
		})
	}
}

// TestParseRange_Range tests parsing of range format
func TestParseRange_Range(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Float range", "[0.7 0.9]", 0.7, 0.9},
		{"Integer range", "[10 20]", 10, 20},
		{"Negative range", "[-5 -2]", -5, -2},
		{"Extra spaces", "  [ 20   50 ] ", 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.input, err)
			}
			if r.Min != tt.wantMin || r.Max != tt.wantMax {
				t.Errorf("ParseRange(%q) = %+v, want [%v %v]", tt.input, r, tt.wantMin, tt.wantMax)
			}
		})
	}
}

// TestParseRange_Errors tests malformed input
func TestParseRange_Errors(t *testing.T) {
	inputs := []string{"", "abc", "[1 2", "[1 2 3]", "[5 1]", "[a 1]"}
	for _, in := range inputs {
		if _, err := ParseRange(in); err == nil {
			t.Errorf("ParseRange(%q) expected error", in)
		}
	}
}

// TestRangeYAML 测试 YAML 读写
func TestRangeYAML(t *testing.T) {
	var doc struct {
		TTL   Range `yaml:"ttl"`
		Size  Range `yaml:"size"`
		Speed Range `yaml:"speed"`
	}
	data := []byte("ttl: \"[20 50]\"\nsize: 5\nspeed: \"-2\"\n")
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.TTL.Min != 20 || doc.TTL.Max != 50 {
		t.Errorf("ttl = %+v, want [20 50]", doc.TTL)
	}
	if !doc.Size.IsFixed() || doc.Size.Min != 5 {
		t.Errorf("size = %+v, want fixed 5", doc.Size)
	}
	if doc.Speed.Min != -2 {
		t.Errorf("speed = %+v, want fixed -2", doc.Speed)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back struct {
		TTL Range `yaml:"ttl"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal of marshalled output error: %v", err)
	}
	if back.TTL != doc.TTL {
		t.Errorf("round trip ttl = %+v, want %+v", back.TTL, doc.TTL)
	}

	bad := []byte("ttl: \"[50 20]\"\n")
	if err := yaml.Unmarshal(bad, &doc); err == nil {
		t.Error("Expected error for inverted range")
	}
}

// TestEvaluateKeyframes_Linear tests linear interpolation
func TestEvaluateKeyframes_Linear(t *testing.T) {
	keyframes := []Keyframe{
		{Time: 0, Value: 0},
		{Time: 1, Value: 100},
	}

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"Start", 0.0, 0},
		{"Quarter", 0.25, 25},
		{"Half", 0.5, 50},
		{"ThreeQuarter", 0.75, 75},
		{"End", 1.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateKeyframes(keyframes, tt.t, "Linear")
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("EvaluateKeyframes(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

// TestEvaluateKeyframes_HighlightStops 测试高光渐变色标
func TestEvaluateKeyframes_HighlightStops(t *testing.T) {
	stops := []Keyframe{
		{Time: 0, Value: 0.15},
		{Time: 0.2, Value: 0.10},
		{Time: 0.4, Value: 0.05},
		{Time: 1, Value: 0},
	}

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0.15},
		{0.1, 0.125},
		{0.2, 0.10},
		{0.3, 0.075},
		{0.7, 0.025},
		{1, 0},
	}

	for _, tt := range tests {
		got := EvaluateKeyframes(stops, tt.t, "")
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EvaluateKeyframes(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

// TestEvaluateKeyframes_EdgeCases tests edge cases
func TestEvaluateKeyframes_EdgeCases(t *testing.T) {
	t.Run("Empty keyframes", func(t *testing.T) {
		got := EvaluateKeyframes([]Keyframe{}, 0.5, "Linear")
		if got != 0 {
			t.Errorf("EvaluateKeyframes(empty) = %v, want 0", got)
		}
	})

	t.Run("Single keyframe", func(t *testing.T) {
		keyframes := []Keyframe{{Time: 0, Value: 42}}
		got := EvaluateKeyframes(keyframes, 0.5, "Linear")
		if got != 42 {
			t.Errorf("EvaluateKeyframes(single) = %v, want 42", got)
		}
	})

	t.Run("Out of bounds (below)", func(t *testing.T) {
		keyframes := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 100}}
		got := EvaluateKeyframes(keyframes, -0.5, "Linear")
		if got != 0 {
			t.Errorf("EvaluateKeyframes(t=-0.5) = %v, want 0 (clamped)", got)
		}
	})

	t.Run("Out of bounds (above)", func(t *testing.T) {
		keyframes := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 100}}
		got := EvaluateKeyframes(keyframes, 1.5, "Linear")
		if got != 100 {
			t.Errorf("EvaluateKeyframes(t=1.5) = %v, want 100 (clamped)", got)
		}
	})
}

// TestEvaluateKeyframes_Interpolations tests different interpolation modes
func TestEvaluateKeyframes_Interpolations(t *testing.T) {
	keyframes := []Keyframe{
		{Time: 0, Value: 0},
		{Time: 1, Value: 100},
	}

	if got := EvaluateKeyframes(keyframes, 0.5, "EaseIn"); math.Abs(got-25) > 0.0001 {
		t.Errorf("EvaluateKeyframes(EaseIn, t=0.5) = %v, want 25", got)
	}
	if got := EvaluateKeyframes(keyframes, 0.5, "EaseOut"); math.Abs(got-75) > 0.0001 {
		t.Errorf("EvaluateKeyframes(EaseOut, t=0.5) = %v, want 75", got)
	}
	if got := EvaluateKeyframes(keyframes, 0.5, "UnknownMode"); math.Abs(got-50) > 0.0001 {
		t.Errorf("EvaluateKeyframes(Unknown, t=0.5) = %v, want 50 (linear fallback)", got)
	}
}

// TestRandomInRange tests range randomization
func TestRandomInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("Basic range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			got := RandomInRange(rng, 10, 20)
			if got < 10 || got >= 20 {
				t.Errorf("RandomInRange(10, 20) = %v, out of range", got)
			}
		}
	})

	t.Run("Equal min and max", func(t *testing.T) {
		if got := RandomInRange(rng, 5, 5); got != 5 {
			t.Errorf("RandomInRange(5, 5) = %v, want 5", got)
		}
	})

	t.Run("Nil source", func(t *testing.T) {
		got := Range{Min: 1, Max: 2}.Random(nil)
		if got < 1 || got >= 2 {
			t.Errorf("Random(nil) = %v, out of range", got)
		}
	})
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v, want 15", got)
	}
}
