// SPDX-License-Identifier: EPL-2.0

package cs229

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/sndkit/audio"
	"github.com/ik5/sndkit/utils"
)

// Encoder writes CS229 text sounds.
type Encoder struct{}

// Encode writes s as a CS229 document. Sounds in WAVE convention are
// converted on a copy first.
func (Encoder) Encode(w io.Writer, s *audio.Sound) error {
	if !audio.IsSupportedBitDepth(s.BitDepth) {
		return audio.ErrUnsupportedBitDepth
	}
	if s.Container != audio.CS229 {
		s = s.Clone()
		s.ConvertTo(audio.CS229)
	}

	out, err := appendDocument(nil, s)
	if err != nil {
		return err
	}

	n, err := w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrWriteTooFewChars, err)
	}
	if n < len(out) {
		return audio.ErrWriteTooFewChars
	}

	return nil
}

func appendHeader(out []byte, s *audio.Sound) []byte {
	out = append(out, Magic+"\n"...)
	out = fmt.Appendf(out, "Samples %d\n", s.NumSamples())
	out = fmt.Appendf(out, "Channels %d\n", s.Channels)
	out = fmt.Appendf(out, "BitRes %d\n", s.BitDepth)
	out = fmt.Appendf(out, "SampleRate %d\n", s.SampleRate)
	return append(out, "StartData\n"...)
}

// appendDocument renders the header and the sample grid. The grid is sized
// up front from the widest value each bit depth can print.
func appendDocument(out []byte, s *audio.Sound) ([]byte, error) {
	view, err := s.View()
	if err != nil {
		return nil, err
	}

	frames := s.NumSamples()
	perFrame := s.Channels * (utils.MaxDigits(s.BitDepth) + 1)
	if perFrame > 0 && frames > (audio.MaxBufferSize-len(out))/perFrame {
		return nil, audio.ErrWriteMemory
	}

	out = appendHeader(out, s)
	grid := make([]byte, 0, frames*perFrame)
	for f := range frames {
		for c := range s.Channels {
			if c > 0 {
				grid = append(grid, ' ')
			}
			grid = strconv.AppendInt(grid, view.At(f*s.Channels+c), 10)
		}
		grid = append(grid, '\n')
	}

	return append(out, grid...), nil
}
