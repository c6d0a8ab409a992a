// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sndkit/audio"
)

// Magic is the tag an AIFF stream starts with.
const Magic = "FORM"

const chunkSamples = 4096

// pcmReader is the part of aiff.Decoder the importer drives. It is an
// interface so tests can feed samples without building AIFF files.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder imports uncompressed AIFF files. Decoded sounds are always in
// WAVE convention since it holds every 8-bit amplitude AIFF can store.
type Decoder struct{}

// Decode reads a whole AIFF stream. go-audio needs to seek, so a reader that
// is not an io.ReadSeeker is buffered in memory first.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	s := audio.NewSound("")
	s.Container = audio.WAVE

	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return s, s.Fail(fmt.Errorf("%w: %w", audio.ErrRead, err))
		}
		rs = &readSeeker{data: data}
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return s, s.Fail(audio.ErrUnknownFileType)
	}
	dec.ReadInfo()

	if format := dec.Format(); format != nil {
		s.SampleRate = uint32(format.SampleRate)
		s.Channels = format.NumChannels
	}
	s.BitDepth = int(dec.BitDepth)

	imported, err := readPCM(dec, s.BitDepth)
	if err != nil {
		return s, s.Fail(err)
	}
	s.Data = imported.Data

	return s, nil
}

// readPCM drains pr into a WAVE convention sound of the given depth.
func readPCM(pr pcmReader, bitDepth int) (*audio.Sound, error) {
	if !audio.IsSupportedBitDepth(bitDepth) {
		return nil, audio.ErrUnsupportedBitDepth
	}
	format := pr.Format()
	if format == nil {
		return nil, audio.ErrUnsupportedFormat
	}
	if format.NumChannels <= 0 {
		return nil, audio.ErrZeroChannels
	}

	limit := audio.MaxBufferSize / (bitDepth / 8)
	chunk := &goaudio.IntBuffer{Format: format, Data: make([]int, chunkSamples)}
	full := &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth}

	for {
		chunk.Data = chunk.Data[:chunkSamples]
		n, err := pr.PCMBuffer(chunk)
		if len(full.Data)+n > limit {
			return nil, audio.ErrOutOfMemory
		}
		full.Data = append(full.Data, chunk.Data[:n]...)

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", audio.ErrRead, err)
		}
		if n == 0 {
			break
		}
	}

	return audio.FromIntBuffer(full, bitDepth, audio.WAVE)
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (int, error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n := copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = rs.offset + offset
	case io.SeekEnd:
		next = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, errors.New("negative position")
	}

	rs.offset = next
	return next, nil
}
