// SPDX-License-Identifier: EPL-2.0

package audio

// MixToMono folds every frame of s into a single channel holding the mean
// amplitude of its channels, truncated toward zero.
func (s *Sound) MixToMono() error {
	f, err := formatOf(s)
	if err != nil {
		return err
	}
	if s.Channels == 0 {
		return ErrZeroChannels
	}
	if s.Channels == 1 {
		return nil
	}

	channels := s.Channels
	frames := s.NumSamples()
	stride := channels * f.width

	var data []byte
	if frames > 0 {
		data = make([]byte, frames*f.width)
	}

	at := func(frame, ch int) int64 {
		return f.get(s.Data[frame*stride+ch*f.width:])
	}

	switch channels {
	case 2:
		for fr := range frames {
			f.put(data[fr*f.width:], (at(fr, 0)+at(fr, 1))/2)
		}
	default:
		for fr := range frames {
			var sum int64
			for c := range channels {
				sum += at(fr, c)
			}
			f.put(data[fr*f.width:], sum/int64(channels))
		}
	}

	s.Data = data
	s.Channels = 1
	return nil
}
