// SPDX-License-Identifier: EPL-2.0

package cs229

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/sndkit/audio"
	"github.com/ik5/sndkit/internal/bytesource"
	"github.com/ik5/sndkit/utils"
)

const (
	// Token limits include the terminating whitespace: "samplerate" plus one,
	// and "-2147483647" plus one.
	keywordLimit = 12
	valueLimit   = 13

	// initialCapacity is the first size of the growing sample buffer.
	initialCapacity = 16
)

// Magic is the first line of every CS229 file, compared case-insensitively.
const Magic = "CS229"

// header collects the keyword values of one file.
type header struct {
	samples    uint32
	channels   int
	bitRes     int
	sampleRate uint32
}

// Decoder reads CS229 text sounds.
type Decoder struct{}

// Decode reads a complete CS229 document from r, starting at its magic line.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	s := audio.NewSound("")
	s.Container = audio.CS229

	br := bytesource.New(r)
	if err := readMagic(br); err != nil {
		return s, s.Fail(err)
	}

	h, err := readHeader(br)
	if err != nil {
		return s, s.Fail(err)
	}
	s.SampleRate = h.sampleRate
	s.BitDepth = h.bitRes
	s.Channels = h.channels

	data, err := readSamples(br, h)
	if err != nil {
		return s, s.Fail(err)
	}
	s.Data = data

	return s, nil
}

func readMagic(br *bytesource.Reader) error {
	magic := make([]byte, len(Magic))
	if err := br.ReadFull(magic); err != nil {
		return err
	}
	if !bytes.EqualFold(magic, []byte(Magic)) {
		return audio.ErrUnknownFileType
	}
	return br.SkipLine()
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// readToken reads bytes up to and including the first space, tab or newline.
// It returns the token without its terminator and any trailing carriage
// return. ok is false when no terminator was found within limit-1 bytes.
func readToken(br *bytesource.Reader, limit int) (tok string, term byte, ok bool, err error) {
	var b []byte
	for len(b) < limit-1 {
		c, err := br.ReadByte()
		if err != nil {
			return "", 0, false, err
		}
		if isBlank(c) || c == '\n' {
			return strings.TrimSuffix(string(b), "\r"), c, true, nil
		}
		b = append(b, c)
	}
	return "", 0, false, nil
}

// skipBlanks consumes spaces and tabs and returns the first other byte.
func skipBlanks(br *bytesource.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isBlank(c) {
			return c, nil
		}
	}
}

// readHeader reads keyword lines up to and including StartData.
func readHeader(br *bytesource.Reader) (header, error) {
	var h header

	for {
		c, err := br.ReadByte()
		if err != nil {
			return h, err
		}
		switch {
		case c == '\n':
			continue
		case c == '#' || c == '\r' || isBlank(c):
			if err := br.SkipLine(); err != nil {
				return h, err
			}
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return h, fmt.Errorf("%w: %w", audio.ErrRead, err)
		}

		done, err := readEntry(br, &h)
		if err != nil {
			return h, err
		}
		if done {
			break
		}
	}

	if !audio.IsSupportedBitDepth(h.bitRes) {
		return h, audio.ErrUnsupportedBitDepth
	}
	if h.channels == 0 {
		return h, audio.ErrZeroChannels
	}

	return h, nil
}

// readEntry reads one "keyword value" line into h. done reports StartData.
func readEntry(br *bytesource.Reader, h *header) (done bool, err error) {
	tok, term, ok, err := readToken(br, keywordLimit)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, audio.ErrInvalidKeyword
	}

	keyword := strings.ToLower(tok)
	var bits int
	switch keyword {
	case "startdata":
		if term != '\n' {
			return true, br.SkipLine()
		}
		return true, nil
	case "samples":
		bits = 32
	case "channels":
		bits = 8
	case "bitres", "samplerate":
		bits = 16
	default:
		return false, audio.ErrInvalidKeyword
	}

	if term == '\n' {
		return false, audio.ErrNoValue
	}
	first, err := skipBlanks(br)
	if err != nil {
		return false, err
	}
	if first == '\n' {
		return false, audio.ErrNoValue
	}
	if err := br.UnreadByte(); err != nil {
		return false, fmt.Errorf("%w: %w", audio.ErrRead, err)
	}

	tok, term, ok, err = readToken(br, valueLimit)
	if err != nil {
		return false, err
	}
	if !ok || tok == "" {
		return false, audio.ErrNoValue
	}
	if term != '\n' {
		if err := br.SkipLine(); err != nil {
			return false, err
		}
	}

	v, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return false, audio.ErrNoValue
	}

	switch keyword {
	case "samples":
		h.samples = uint32(v)
	case "channels":
		h.channels = int(v)
	case "bitres":
		h.bitRes = int(v)
	case "samplerate":
		h.sampleRate = uint32(v)
	}

	return false, nil
}

// frameStatus tells readFrame's caller whether more frames may follow.
type frameStatus int

const (
	frameRead frameStatus = iota
	frameLast
	streamEnd
)

// readSamples reads frames until the stream ends. The buffer doubles as it
// fills and is cut to its exact length at the end.
func readSamples(br *bytesource.Reader, h header) ([]byte, error) {
	frameSize := h.channels * h.bitRes / 8
	buf := make([]byte, 0, max(initialCapacity, frameSize))
	frame := make([]int64, h.channels)

	for {
		status, err := readFrame(br, frame, h.bitRes)
		if err != nil {
			return nil, err
		}
		if status == streamEnd {
			break
		}

		if len(buf)+frameSize > cap(buf) {
			grown := 2 * cap(buf)
			if grown > audio.MaxBufferSize {
				grown = audio.MaxBufferSize
			}
			if len(buf)+frameSize > grown {
				return nil, audio.ErrOutOfMemory
			}
			next := make([]byte, len(buf), grown)
			copy(next, buf)
			buf = next
		}

		at := len(buf)
		buf = buf[:at+frameSize]
		view, err := audio.NewView(buf[at:], h.bitRes, audio.CS229)
		if err != nil {
			return nil, err
		}
		for i, v := range frame {
			view.Set(i, v)
		}

		if status == frameLast {
			break
		}
	}

	if len(buf) == 0 {
		return nil, nil
	}
	data := make([]byte, len(buf))
	copy(data, buf)
	return data, nil
}

// readFrame reads one line of len(frame) values. Blank lines before a frame
// are skipped, and end of stream before the first value ends the grid.
func readFrame(br *bytesource.Reader, frame []int64, bitRes int) (frameStatus, error) {
	for i := range frame {
		c, err := skipFieldSeparators(br, i == 0)
		if errors.Is(err, audio.ErrEOF) {
			if i == 0 {
				return streamEnd, nil
			}
			return 0, audio.ErrNotEnoughData
		}
		if err != nil {
			return 0, err
		}
		if c == '\n' {
			return 0, audio.ErrNotEnoughData
		}

		tok, term, err := readValue(br, c)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || !utils.InCS229Range(v, bitRes) {
			return 0, audio.ErrInvalidSampleData
		}
		frame[i] = v

		last := i == len(frame)-1
		switch term {
		case 0:
			if !last {
				return 0, audio.ErrNotEnoughData
			}
			return frameLast, nil
		case '\n':
			if !last {
				return 0, audio.ErrNotEnoughData
			}
			return frameRead, nil
		}
		if last {
			return finishLine(br)
		}
	}

	return frameRead, nil
}

// skipFieldSeparators consumes blanks and carriage returns before a value.
// At the start of a frame it also consumes empty lines.
func skipFieldSeparators(br *bytesource.Reader, lineStart bool) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if isBlank(c) || c == '\r' || (lineStart && c == '\n') {
			continue
		}
		return c, nil
	}
}

// readValue reads a sample token starting with first. term is the byte that
// ended it, or 0 at end of stream.
func readValue(br *bytesource.Reader, first byte) (tok string, term byte, err error) {
	b := []byte{first}
	for {
		c, err := br.ReadByte()
		if errors.Is(err, audio.ErrEOF) {
			return string(b), 0, nil
		}
		if err != nil {
			return "", 0, err
		}
		if isBlank(c) || c == '\r' || c == '\n' {
			return string(b), c, nil
		}
		if len(b) == valueLimit-1 {
			return "", 0, audio.ErrInvalidSampleData
		}
		b = append(b, c)
	}
}

// finishLine allows only blanks after the last value of a frame.
func finishLine(br *bytesource.Reader) (frameStatus, error) {
	for {
		c, err := br.ReadByte()
		if errors.Is(err, audio.ErrEOF) {
			return frameLast, nil
		}
		if err != nil {
			return 0, err
		}
		switch {
		case c == '\n':
			return frameRead, nil
		case isBlank(c) || c == '\r':
			continue
		default:
			return 0, audio.ErrTooMuchData
		}
	}
}
