// Package particle 提供粒子与动画数值的解析工具。
//
// 配置文件中的数值支持两种写法：
//   - 固定值: "5"
//   - 范围:   "[20 50]"，运行时在 [min, max) 内随机取值
//
// 另外提供关键帧插值（用于高光渐变、淡出曲线等）。
package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keyframe represents a single keyframe in an animation curve.
type Keyframe struct {
	Time  float64 `yaml:"time"`  // Normalized time (0-1)
	Value float64 `yaml:"value"` // Value at this keyframe
}

// Range 表示一个取值区间 [Min, Max)
// Min == Max 时表示固定值
type Range struct {
	Min float64
	Max float64
}

// Fixed 返回固定值区间
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// IsFixed 是否为固定值
func (r Range) IsFixed() bool {
	return r.Min == r.Max
}

// Random 在区间内随机取值
// rng 为 nil 时使用全局随机源
func (r Range) Random(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// String 返回配置文件中的写法
func (r Range) String() string {
	if r.IsFixed() {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// MarshalYAML 以字符串形式写回配置
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML 支持 "5"、5、"[20 50]" 三种写法
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range must be a scalar", value.Line)
	}
	parsed, err := ParseRange(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = parsed
	return nil
}

// ParseRange 解析数值字符串
// 支持的格式:
//   - 固定值: "1500" → {1500, 1500}
//   - 范围: "[0.7 0.9]" → {0.7, 0.9}
//   - 单值范围: "[5]" → {5, 5}
//
// 区间上下界颠倒时返回错误
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return Fixed(v), nil
		case 2:
			lo, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range min %q: %w", s, err)
			}
			hi, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range max %q: %w", s, err)
			}
			if lo > hi {
				return Range{}, fmt.Errorf("range min %v greater than max %v", lo, hi)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Fixed(v), nil
}

// EvaluateKeyframes evaluates keyframes at normalized time t.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", "EaseOut")
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	// Clamp t to [0, 1]
	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	// Find the keyframe interval containing t
	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	// If t is beyond the last keyframe, return the last value
	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max).
// rng 为 nil 时使用全局随机源
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
