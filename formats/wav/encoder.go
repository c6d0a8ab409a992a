// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/sndkit/audio"
)

const (
	// RIFF and WAVE are the outer container tags.
	RIFF = "RIFF"
	WAVE = "WAVE"

	headerSize = 44
)

// Encoder writes PCM WAVE sounds.
type Encoder struct{}

// Encode writes s as a canonical 44-byte header followed by the samples and a
// pad byte when the data size is odd. Sounds in CS229 convention are
// converted on a copy first.
func (Encoder) Encode(w io.Writer, s *audio.Sound) error {
	if !audio.IsSupportedBitDepth(s.BitDepth) {
		return audio.ErrUnsupportedBitDepth
	}
	if s.Container != audio.WAVE {
		s = s.Clone()
		s.ConvertTo(audio.WAVE)
	}
	if uint64(len(s.Data)) > math.MaxUint32-(headerSize-8) || s.Channels > math.MaxUint16 {
		return audio.ErrWriteMemory
	}

	if err := write(w, header(s)); err != nil {
		return err
	}
	if len(s.Data) == 0 {
		return nil
	}
	if err := write(w, s.Data); err != nil {
		return err
	}
	if len(s.Data)%2 == 1 {
		return write(w, []byte{0})
	}

	return nil
}

// header builds the RIFF, fmt and data chunk headers for s.
func header(s *audio.Sound) []byte {
	dataSize := uint32(len(s.Data))
	h := make([]byte, headerSize)

	copy(h[0:4], RIFF)
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], WAVE)

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(s.Channels))
	binary.LittleEndian.PutUint32(h[24:28], s.SampleRate)
	binary.LittleEndian.PutUint32(h[28:32], uint32(s.ByteRate()))
	binary.LittleEndian.PutUint16(h[32:34], uint16(s.BlockAlign()))
	binary.LittleEndian.PutUint16(h[34:36], uint16(s.BitDepth))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

func write(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrWriteTooFewChars, err)
	}
	if n < len(p) {
		return audio.ErrWriteTooFewChars
	}
	return nil
}
