// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/sndkit/utils"

// ConvertTo translates the sample convention of s to c in place.
// Only 8-bit samples change representation; converting to CS229 also raises
// samples sitting at the width minimum by one.
func (s *Sound) ConvertTo(c Container) {
	switch c {
	case CS229:
		WaveToCS229(s)
	case WAVE:
		CS229ToWave(s)
	}
}

// CS229ToWave shifts signed 8-bit samples into the unsigned WAVE range.
func CS229ToWave(s *Sound) {
	if s.Container == WAVE {
		return
	}
	if s.BitDepth == 8 {
		for i := range s.Data {
			s.Data[i] += 128
		}
	}
	s.Container = WAVE
}

// WaveToCS229 shifts unsigned 8-bit samples into the signed CS229 range and
// raises width minimums (-128, -32768, -2147483648) by one.
func WaveToCS229(s *Sound) {
	if s.Container == CS229 {
		return
	}
	if s.BitDepth == 8 {
		for i := range s.Data {
			s.Data[i] -= 128
		}
	}
	s.Container = CS229
	trimMinimum(s)
}

func trimMinimum(s *Sound) {
	f, err := formatOf(s)
	if err != nil {
		return
	}
	lowest := utils.MinSigned(s.BitDepth)
	for i := 0; i+f.width <= len(s.Data); i += f.width {
		if f.get(s.Data[i:]) == lowest {
			f.put(s.Data[i:], lowest+1)
		}
	}
}
