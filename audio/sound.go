// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"time"

	goaudio "github.com/go-audio/audio"
)

// MaxBufferSize bounds every sample buffer allocation. Requests above it
// fail with ErrOutOfMemory instead of aborting the process.
const MaxBufferSize = 1<<31 - 1

// Sound is a fully materialised PCM sound.
//
// Data holds NumSamples frames of Channels interleaved little-endian samples,
// each BitDepth/8 bytes wide. Once Err is set, only Err, Name and the header
// fields are meaningful.
type Sound struct {
	Name       string
	SampleRate uint32
	Container  Container
	BitDepth   int
	Channels   int
	Data       []byte
	Err        error
}

// NewSound returns an empty sound with no buffer.
func NewSound(name string) *Sound {
	return &Sound{Name: name}
}

// Fail records err on the sound, drops any sample data and returns err.
func (s *Sound) Fail(err error) error {
	s.Err = err
	s.Data = nil
	return err
}

// Release drops the sample buffer and name. It is safe to call more than
// once and on sounds that never allocated.
func (s *Sound) Release() {
	if s == nil {
		return
	}
	s.Data = nil
	s.Name = ""
}

// BytesPerSample is the storage width of one sample.
func (s *Sound) BytesPerSample() int { return s.BitDepth / 8 }

// BlockAlign is the width of one frame in bytes.
func (s *Sound) BlockAlign() int { return s.Channels * s.BytesPerSample() }

// ByteRate is the number of bytes per second of audio.
func (s *Sound) ByteRate() int { return int(s.SampleRate) * s.BlockAlign() }

// NumSamples is the number of frames (samples per channel).
func (s *Sound) NumSamples() int {
	if s.Channels == 0 || s.BitDepth == 0 {
		return 0
	}
	return len(s.Data) * 8 / (s.Channels * s.BitDepth)
}

// TotalSamples is the number of individual samples across all channels.
func (s *Sound) TotalSamples() int { return s.NumSamples() * s.Channels }

// Seconds is the playing time of the sound.
func (s *Sound) Seconds() float64 {
	rate := s.ByteRate()
	if rate == 0 {
		return 0
	}
	return float64(len(s.Data)) / float64(rate)
}

func (s *Sound) Duration() time.Duration {
	rate := s.ByteRate()
	if rate == 0 {
		return 0
	}
	return time.Second * time.Duration(len(s.Data)) / time.Duration(rate)
}

// Clone returns a deep copy of s.
func (s *Sound) Clone() *Sound {
	c := *s
	if s.Data != nil {
		c.Data = make([]byte, len(s.Data))
		copy(c.Data, s.Data)
	}
	return &c
}

// FirstError returns the first non-nil Err among sounds.
func FirstError(sounds ...*Sound) error {
	for _, s := range sounds {
		if s != nil && s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// IntBuffer returns the samples as signed amplitudes in a go-audio buffer.
// 8-bit WAVE samples are re-centred so silence is 0.
func (s *Sound) IntBuffer() (*goaudio.IntBuffer, error) {
	f, err := formatOf(s)
	if err != nil {
		return nil, err
	}
	data := make([]int, len(s.Data)/f.width)
	for i := range data {
		data[i] = int(f.get(s.Data[i*f.width:]))
	}
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.Channels,
			SampleRate:  int(s.SampleRate),
		},
		Data:           data,
		SourceBitDepth: s.BitDepth,
	}, nil
}

// FromIntBuffer builds a sound from signed amplitudes. Values outside the
// bit depth wrap. A CS229 sound has width minimums raised by one, as the
// format's range excludes them.
func FromIntBuffer(buf *goaudio.IntBuffer, bitDepth int, c Container) (*Sound, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrZeroChannels
	}
	s := &Sound{
		SampleRate: uint32(buf.Format.SampleRate),
		Container:  c,
		BitDepth:   bitDepth,
		Channels:   buf.Format.NumChannels,
	}
	f, err := formatOf(s)
	if err != nil {
		return nil, err
	}
	if s.Channels <= 0 {
		return nil, ErrZeroChannels
	}
	frames := len(buf.Data) / s.Channels
	size := frames * s.Channels * f.width
	if size > MaxBufferSize {
		return nil, ErrOutOfMemory
	}
	if size > 0 {
		s.Data = make([]byte, size)
	}
	for i := range frames * s.Channels {
		f.put(s.Data[i*f.width:], int64(buf.Data[i]))
	}
	if c == CS229 {
		trimMinimum(s)
	}
	return s, nil
}
