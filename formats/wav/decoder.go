// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"

	"github.com/ik5/sndkit/audio"
	"github.com/ik5/sndkit/internal/bytesource"
)

const (
	fmtChunkSize = 16
	formatPCM    = 1
)

// fmtChunk holds the standard fields of a "fmt " chunk.
type fmtChunk struct {
	audioFormat   uint16
	channels      uint16
	sampleRate    uint32
	byteRate      uint32
	blockAlign    uint16
	bitsPerSample uint16
}

// Decoder reads PCM WAVE sounds.
type Decoder struct{}

// Decode reads a RIFF/WAVE stream from r, starting at its "RIFF" tag.
// Chunks other than "fmt " and "data" are skipped, as is any "data" chunk
// that appears before "fmt ". Reading stops after the first "data" chunk.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	s := audio.NewSound("")
	s.Container = audio.WAVE

	br := bytesource.New(r)
	if err := readRIFFHeader(br); err != nil {
		return s, s.Fail(err)
	}

	fc, data, err := walkChunks(br)
	if fc != nil {
		s.SampleRate = fc.sampleRate
		s.Channels = int(fc.channels)
		s.BitDepth = int(fc.bitsPerSample)
	}
	if err != nil {
		return s, s.Fail(err)
	}
	s.Data = data

	return s, nil
}

func readRIFFHeader(br *bytesource.Reader) error {
	id, err := br.FourCC()
	if err != nil {
		return err
	}
	if id != RIFF {
		return audio.ErrUnknownFileType
	}
	if _, err := br.Uint32(); err != nil {
		return err
	}
	form, err := br.FourCC()
	if err != nil {
		return err
	}
	if form != WAVE {
		return audio.ErrUnknownFileType
	}
	return nil
}

// walkChunks reads chunks until a "data" chunk follows a "fmt " chunk.
func walkChunks(br *bytesource.Reader) (*fmtChunk, []byte, error) {
	var fc *fmtChunk

	for {
		id, err := br.FourCC()
		if err != nil {
			return fc, nil, err
		}
		size, err := br.Uint32()
		if err != nil {
			return fc, nil, err
		}

		switch {
		case id == "fmt ":
			fc, err = readFmt(br, size)
			if err != nil {
				return fc, nil, err
			}
		case id == "data" && fc != nil:
			data, err := readData(br, size, fc)
			return fc, data, err
		default:
			if err := br.Skip(int64(size) + int64(size&1)); err != nil {
				return fc, nil, err
			}
		}
	}
}

// readFmt reads the 16 standard bytes of a "fmt " chunk and skips the rest.
func readFmt(br *bytesource.Reader, size uint32) (*fmtChunk, error) {
	if size < fmtChunkSize {
		return nil, audio.ErrUnsupportedFormat
	}

	var fc fmtChunk
	var err error
	if fc.audioFormat, err = br.Uint16(); err != nil {
		return nil, err
	}
	if fc.channels, err = br.Uint16(); err != nil {
		return nil, err
	}
	if fc.sampleRate, err = br.Uint32(); err != nil {
		return nil, err
	}
	if fc.byteRate, err = br.Uint32(); err != nil {
		return nil, err
	}
	if fc.blockAlign, err = br.Uint16(); err != nil {
		return nil, err
	}
	if fc.bitsPerSample, err = br.Uint16(); err != nil {
		return nil, err
	}

	switch {
	case fc.audioFormat != formatPCM:
		return &fc, audio.ErrUnsupportedFormat
	case !audio.IsSupportedBitDepth(int(fc.bitsPerSample)):
		return &fc, audio.ErrUnsupportedBitDepth
	case fc.channels == 0:
		return &fc, audio.ErrZeroChannels
	}

	extra := int64(size-fmtChunkSize) + int64(size&1)
	if err := br.Skip(extra); err != nil {
		return &fc, err
	}

	return &fc, nil
}

// readData copies a "data" chunk verbatim. A pad byte after an odd sized
// chunk is consumed when present, and trailing bytes that do not form a
// whole frame are dropped.
func readData(br *bytesource.Reader, size uint32, fc *fmtChunk) ([]byte, error) {
	if int64(size) > audio.MaxBufferSize {
		return nil, audio.ErrOutOfMemory
	}
	if size == 0 {
		return nil, nil
	}

	data := make([]byte, size)
	if err := br.ReadFull(data); err != nil {
		return nil, err
	}
	if size&1 == 1 {
		if _, err := br.ReadByte(); err != nil && !errors.Is(err, audio.ErrEOF) {
			return nil, err
		}
	}

	frame := int(fc.channels) * int(fc.bitsPerSample) / 8
	whole := len(data) - len(data)%frame
	if whole == 0 {
		return nil, nil
	}
	return data[:whole], nil
}
