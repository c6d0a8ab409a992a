// SPDX-License-Identifier: EPL-2.0

package audio

import "encoding/binary"

// sampleFormat reads and writes one sample of a fixed width and convention.
// get returns the amplitude, where 0 is silence; put stores an amplitude,
// wrapping at the native width.
type sampleFormat struct {
	width int
	get   func(b []byte) int64
	put   func(b []byte, v int64)
}

var (
	signed8 = sampleFormat{
		width: 1,
		get:   func(b []byte) int64 { return int64(int8(b[0])) },
		put:   func(b []byte, v int64) { b[0] = byte(v) },
	}
	unsigned8 = sampleFormat{
		width: 1,
		get:   func(b []byte) int64 { return int64(b[0]) - 128 },
		put:   func(b []byte, v int64) { b[0] = byte(v + 128) },
	}
	signed16 = sampleFormat{
		width: 2,
		get:   func(b []byte) int64 { return int64(int16(binary.LittleEndian.Uint16(b))) },
		put:   func(b []byte, v int64) { binary.LittleEndian.PutUint16(b, uint16(v)) },
	}
	signed32 = sampleFormat{
		width: 4,
		get:   func(b []byte) int64 { return int64(int32(binary.LittleEndian.Uint32(b))) },
		put:   func(b []byte, v int64) { binary.LittleEndian.PutUint32(b, uint32(v)) },
	}
)

func sampleFormatFor(bitDepth int, c Container) (sampleFormat, error) {
	switch bitDepth {
	case 8:
		if c == WAVE {
			return unsigned8, nil
		}
		return signed8, nil
	case 16:
		return signed16, nil
	case 32:
		return signed32, nil
	default:
		return sampleFormat{}, ErrUnsupportedBitDepth
	}
}

func formatOf(s *Sound) (sampleFormat, error) {
	return sampleFormatFor(s.BitDepth, s.Container)
}

// IsSupportedBitDepth reports whether bitDepth is 8, 16 or 32.
func IsSupportedBitDepth(bitDepth int) bool {
	return bitDepth == 8 || bitDepth == 16 || bitDepth == 32
}

// Silence returns the raw value of a silent sample, 128 for 8-bit WAVE and
// 0 otherwise.
func Silence(bitDepth int, c Container) int64 {
	if bitDepth == 8 && c == WAVE {
		return 128
	}
	return 0
}

// Sample returns the raw stored value of sample i (frame*Channels+channel),
// unsigned for 8-bit WAVE and signed otherwise.
func (s *Sound) Sample(i int) int64 {
	f, err := formatOf(s)
	if err != nil {
		return 0
	}
	return f.get(s.Data[i*f.width:]) + Silence(s.BitDepth, s.Container)
}

// SetSample stores a raw value at sample i, wrapping at the native width.
func (s *Sound) SetSample(i int, v int64) {
	f, err := formatOf(s)
	if err != nil {
		return
	}
	f.put(s.Data[i*f.width:], v-Silence(s.BitDepth, s.Container))
}

// fillSilence writes silence into every sample slot of b.
func fillSilence(b []byte, f sampleFormat) {
	for i := 0; i+f.width <= len(b); i += f.width {
		f.put(b[i:], 0)
	}
}

// View reads and writes amplitudes in a raw sample buffer of one bit depth
// and container convention.
type View struct {
	f    sampleFormat
	data []byte
}

// NewView returns a view over data. Trailing bytes that do not form a whole
// sample are ignored.
func NewView(data []byte, bitDepth int, c Container) (View, error) {
	f, err := sampleFormatFor(bitDepth, c)
	if err != nil {
		return View{}, err
	}
	return View{f: f, data: data}, nil
}

// View returns a view over the samples of s.
func (s *Sound) View() (View, error) {
	return NewView(s.Data, s.BitDepth, s.Container)
}

// Len is the number of whole samples in the view.
func (v View) Len() int { return len(v.data) / v.f.width }

// At returns the amplitude of sample i.
func (v View) At(i int) int64 { return v.f.get(v.data[i*v.f.width:]) }

// Set stores amplitude a at sample i, wrapping at the native width.
func (v View) Set(i int, a int64) { v.f.put(v.data[i*v.f.width:], a) }
