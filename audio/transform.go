// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/sndkit/utils"
)

// ScaleBitDepth widens the samples of s to target bits and multiplies every
// amplitude by 2^target / 2^BitDepth. A target at or below the current depth
// leaves s unchanged.
func (s *Sound) ScaleBitDepth(target int) error {
	if !IsSupportedBitDepth(target) {
		return ErrUnsupportedBitDepth
	}
	from, err := formatOf(s)
	if err != nil {
		return err
	}
	if target <= s.BitDepth {
		return nil
	}
	to, _ := sampleFormatFor(target, s.Container)

	n := len(s.Data) / from.width
	size := n * to.width
	if size > MaxBufferSize {
		s.Err = ErrOutOfMemory
		return ErrOutOfMemory
	}

	ratio := math.Exp2(float64(target)) / math.Exp2(float64(s.BitDepth))
	var data []byte
	if size > 0 {
		data = make([]byte, size)
	}
	for i := range n {
		v := float64(from.get(s.Data[i*from.width:])) * ratio
		to.put(data[i*to.width:], utils.FloatToInt64(v))
	}

	s.Data = data
	s.BitDepth = target
	return nil
}

// AddChannels appends n silent channels to every frame of s.
func (s *Sound) AddChannels(n int) error {
	f, err := formatOf(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	frames := s.NumSamples()
	oldStride := s.Channels * f.width
	newStride := (s.Channels + n) * f.width
	size := frames * newStride
	if size > MaxBufferSize {
		s.Err = ErrOutOfMemory
		return ErrOutOfMemory
	}

	var data []byte
	if size > 0 {
		data = make([]byte, size)
	}
	for fr := range frames {
		dst := data[fr*newStride : (fr+1)*newStride]
		copy(dst, s.Data[fr*oldStride:(fr+1)*oldStride])
		fillSilence(dst[oldStride:], f)
	}

	s.Data = data
	s.Channels += n
	return nil
}

// AddFrames appends n silent frames to s.
func (s *Sound) AddFrames(n int) error {
	f, err := formatOf(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if s.Channels == 0 {
		return ErrZeroChannels
	}

	old := len(s.Data)
	size := old + n*s.BlockAlign()
	if size > MaxBufferSize {
		s.Err = ErrOutOfMemory
		return ErrOutOfMemory
	}

	data := make([]byte, size)
	copy(data, s.Data)
	fillSilence(data[old:], f)

	s.Data = data
	return nil
}

// IsolateChannel reduces s to the single channel ch.
func (s *Sound) IsolateChannel(ch int) error {
	f, err := formatOf(s)
	if err != nil {
		return err
	}
	if s.Channels == 0 {
		return ErrZeroChannels
	}
	if ch < 0 || ch >= s.Channels {
		return ErrChannelRange
	}
	if s.Channels == 1 {
		return nil
	}

	frames := s.NumSamples()
	stride := s.BlockAlign()
	offset := ch * f.width

	var data []byte
	if frames > 0 {
		data = make([]byte, frames*f.width)
	}
	for fr := range frames {
		src := s.Data[fr*stride+offset:]
		copy(data[fr*f.width:(fr+1)*f.width], src[:f.width])
	}

	s.Data = data
	s.Channels = 1
	return nil
}

// Scale multiplies every amplitude by gain. Results are truncated toward
// zero and wrap at the native width rather than saturating.
func (s *Sound) Scale(gain float64) error {
	f, err := formatOf(s)
	if err != nil {
		return err
	}
	for i := 0; i+f.width <= len(s.Data); i += f.width {
		v := float64(f.get(s.Data[i:])) * gain
		f.put(s.Data[i:], utils.FloatToInt64(v))
	}
	return nil
}

// EnsureBitDepth widens whichever of a and b has the smaller bit depth.
func EnsureBitDepth(a, b *Sound) error {
	switch {
	case a.BitDepth > b.BitDepth:
		return b.ScaleBitDepth(a.BitDepth)
	case a.BitDepth < b.BitDepth:
		return a.ScaleBitDepth(b.BitDepth)
	}
	return nil
}

// EnsureNumChannels adds silent channels to whichever of a and b has fewer.
func EnsureNumChannels(a, b *Sound) error {
	switch {
	case a.Channels > b.Channels:
		return b.AddChannels(a.Channels - b.Channels)
	case a.Channels < b.Channels:
		return a.AddChannels(b.Channels - a.Channels)
	}
	return nil
}

// EnsureNumSamples appends silent frames to whichever of a and b is shorter.
func EnsureNumSamples(a, b *Sound) error {
	na, nb := a.NumSamples(), b.NumSamples()
	switch {
	case na > nb:
		return b.AddFrames(na - nb)
	case na < nb:
		return a.AddFrames(nb - na)
	}
	return nil
}

// checkCombinable validates what every two-sound operation needs before any
// mutation happens.
func checkCombinable(dst, src *Sound) error {
	if dst.SampleRate != src.SampleRate {
		return ErrIncompatibleSampleRate
	}
	if _, err := formatOf(dst); err != nil {
		return err
	}
	if _, err := formatOf(src); err != nil {
		return err
	}
	return nil
}
