// SPDX-License-Identifier: EPL-2.0

package audio

// Concatenate appends the frames of src to dst.
//
// Both sounds must share a sample rate. The smaller bit depth and channel
// count are raised to match and src is converted to dst's container. src
// itself is never modified; dst is only modified once the sample rates match.
func Concatenate(dst, src *Sound) error {
	if err := checkCombinable(dst, src); err != nil {
		return err
	}
	src = src.Clone()

	if err := EnsureBitDepth(dst, src); err != nil {
		return err
	}
	if err := EnsureNumChannels(dst, src); err != nil {
		return err
	}
	src.ConvertTo(dst.Container)

	size := len(dst.Data) + len(src.Data)
	if size > MaxBufferSize {
		dst.Err = ErrOutOfMemory
		return ErrOutOfMemory
	}
	data := make([]byte, size)
	copy(data, dst.Data)
	copy(data[len(dst.Data):], src.Data)
	dst.Data = data

	return nil
}

// ConcatenateAll joins sounds in order into a new sound in the target
// container. The inputs are left untouched.
func ConcatenateAll(sounds []*Sound, target Container) (*Sound, error) {
	if len(sounds) == 0 {
		return nil, ErrNoSounds
	}
	if err := FirstError(sounds...); err != nil {
		return nil, err
	}

	out := sounds[0].Clone()
	out.ConvertTo(target)
	for _, s := range sounds[1:] {
		if err := Concatenate(out, s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Mix adds the amplitudes of src into dst sample by sample.
//
// Bit depth, channel count and frame count are equalised first. Sums wrap at
// the native width.
func Mix(dst, src *Sound) error {
	if err := checkCombinable(dst, src); err != nil {
		return err
	}
	src = src.Clone()

	if err := EnsureBitDepth(dst, src); err != nil {
		return err
	}
	if err := EnsureNumChannels(dst, src); err != nil {
		return err
	}
	if err := EnsureNumSamples(dst, src); err != nil {
		return err
	}
	src.ConvertTo(dst.Container)
	if dst.Container != src.Container || dst.BitDepth != src.BitDepth {
		return ErrIncompatibleFormat
	}

	f, err := formatOf(dst)
	if err != nil {
		return err
	}
	for i := 0; i+f.width <= len(dst.Data); i += f.width {
		f.put(dst.Data[i:], f.get(dst.Data[i:])+f.get(src.Data[i:]))
	}

	return nil
}

// MixAll scales every sound by its gain and sums them into a new sound in
// the target container. The inputs are left untouched.
func MixAll(sounds []*Sound, gains []float64, target Container) (*Sound, error) {
	if len(sounds) == 0 {
		return nil, ErrNoSounds
	}
	if len(sounds) != len(gains) {
		return nil, ErrGainsMismatch
	}
	if err := FirstError(sounds...); err != nil {
		return nil, err
	}

	out := sounds[0].Clone()
	if err := out.Scale(gains[0]); err != nil {
		return nil, err
	}
	out.ConvertTo(target)

	for i, s := range sounds[1:] {
		scaled := s.Clone()
		if err := scaled.Scale(gains[i+1]); err != nil {
			return nil, err
		}
		if err := Mix(out, scaled); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// StackChannels appends the channels of src after those of dst in every
// frame, so a stereo dst and a mono src give a three channel dst.
func StackChannels(dst, src *Sound) error {
	if err := checkCombinable(dst, src); err != nil {
		return err
	}
	src = src.Clone()
	src.ConvertTo(dst.Container)

	if dst.Channels == 0 {
		if err := src.ScaleBitDepth(dst.BitDepth); err != nil {
			return err
		}
		dst.BitDepth, dst.Channels, dst.Data = src.BitDepth, src.Channels, src.Data
		return nil
	}
	if src.Channels == 0 {
		return nil
	}

	if err := EnsureBitDepth(dst, src); err != nil {
		return err
	}
	if err := EnsureNumSamples(dst, src); err != nil {
		return err
	}

	frames := dst.NumSamples()
	left, right := dst.BlockAlign(), src.BlockAlign()
	size := frames * (left + right)
	if size > MaxBufferSize {
		dst.Err = ErrOutOfMemory
		return ErrOutOfMemory
	}

	var data []byte
	if size > 0 {
		data = make([]byte, size)
	}
	for fr := range frames {
		out := data[fr*(left+right):]
		copy(out[:left], dst.Data[fr*left:(fr+1)*left])
		copy(out[left:left+right], src.Data[fr*right:(fr+1)*right])
	}

	dst.Data = data
	dst.Channels += src.Channels
	return nil
}
