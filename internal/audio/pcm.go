package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
)

// bytesPerFrame 16-bit 立体声，每帧 4 字节
const bytesPerFrame = 4

// PCMStream holds rendered 16-bit little-endian stereo PCM.
// It implements io.ReadSeeker plus Length, which is what Ebitengine's
// audio.Player and audio.NewInfiniteLoop expect.
type PCMStream struct {
	data       []byte // PCM data (16-bit signed, interleaved L/R)
	sampleRate int    // Sample rate in Hz
	offset     int64  // Current read position
}

// Render drains a beep streamer into memory.
// The streamer should be finite; maxFrames bounds runaway streamers.
//
// Parameters:
//   - s: Source streamer (values outside [-1, 1] are clipped)
//   - rate: Sample rate the streamer was built for
//   - maxFrames: Upper bound on rendered frames (<= 0 means 60 seconds)
//
// Returns:
//   - *PCMStream: Rendered audio, positioned at the start
//   - error: Error reported by the streamer
func Render(s beep.Streamer, rate beep.SampleRate, maxFrames int) (*PCMStream, error) {
	if s == nil {
		return nil, fmt.Errorf("nil streamer")
	}
	if maxFrames <= 0 {
		maxFrames = rate.N(60 * time.Second)
	}

	var data []byte
	buf := make([][2]float64, 512)
	frames := 0
	for frames < maxFrames {
		want := len(buf)
		if remaining := maxFrames - frames; remaining < want {
			want = remaining
		}
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			l := toInt16(buf[i][0])
			r := toInt16(buf[i][1])
			data = append(data, byte(l), byte(l>>8), byte(r), byte(r>>8))
		}
		frames += n
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render audio: %w", err)
	}

	return &PCMStream{
		data:       data,
		sampleRate: int(rate),
	}, nil
}

// toInt16 将 [-1, 1] 浮点采样转换为 16 位整数，越界时削波
func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (p *PCMStream) Read(b []byte) (n int, err error) {
	if p.offset >= int64(len(p.data)) {
		return 0, io.EOF
	}

	n = copy(b, p.data[p.offset:])
	p.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (p *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = p.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(p.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	p.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the PCM data in bytes.
func (p *PCMStream) Length() int64 {
	return int64(len(p.data))
}

// Frames returns the number of stereo frames.
func (p *PCMStream) Frames() int {
	return len(p.data) / bytesPerFrame
}

// SampleRate returns the sample rate in Hz.
func (p *PCMStream) SampleRate() int {
	return p.sampleRate
}

// Bytes returns a copy of the rendered data.
func (p *PCMStream) Bytes() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}
