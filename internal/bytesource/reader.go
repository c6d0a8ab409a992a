// SPDX-License-Identifier: EPL-2.0

// Package bytesource wraps a stream with the exact-read, peek and skip
// primitives the codecs need, and classifies failures as end of stream or
// read errors.
package bytesource

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndkit/audio"
)

// Reader is a buffered byte source. It is not safe for concurrent use.
type Reader struct {
	br *bufio.Reader
}

// New wraps r. An existing *Reader is returned unchanged so bytes already
// peeked by a caller are not lost.
func New(r io.Reader) *Reader {
	if br, ok := r.(*Reader); ok {
		return br
	}
	return &Reader{br: bufio.NewReader(r)}
}

// classify maps io errors onto audio.ErrEOF and audio.ErrRead.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return audio.ErrEOF
	default:
		return fmt.Errorf("%w: %w", audio.ErrRead, err)
	}
}

// Read implements io.Reader and passes io.EOF through untouched.
func (r *Reader) Read(p []byte) (int, error) {
	return r.br.Read(p)
}

// ReadFull fills p completely.
func (r *Reader) ReadFull(p []byte) error {
	_, err := io.ReadFull(r.br, p)
	return classify(err)
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.br.ReadByte()
	return b, classify(err)
}

// UnreadByte pushes back the last byte returned by ReadByte.
func (r *Reader) UnreadByte() error {
	return r.br.UnreadByte()
}

// Peek returns the next n bytes without consuming them.
func (r *Reader) Peek(n int) ([]byte, error) {
	b, err := r.br.Peek(n)
	if err != nil {
		return b, classify(err)
	}
	return b, nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int64) error {
	for n > 0 {
		step := min(n, 1<<20)
		d, err := r.br.Discard(int(step))
		if err != nil {
			return classify(err)
		}
		n -= int64(d)
	}
	return nil
}

// SkipLine discards everything up to and including the next newline.
func (r *Reader) SkipLine() error {
	for {
		_, err := r.br.ReadSlice('\n')
		if err == nil {
			return nil
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return classify(err)
		}
	}
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() (uint16, error) {
	var b [2]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// FourCC reads a four character chunk identifier.
func (r *Reader) FourCC() (string, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return "", err
	}
	return string(b[:]), nil
}
