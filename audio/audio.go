// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// Container identifies the file format a sound's samples are laid out for.
// It decides the 8-bit sample convention: signed for CS229, unsigned for WAVE.
type Container int

const (
	CS229 Container = iota
	WAVE
)

func (c Container) String() string {
	switch c {
	case CS229:
		return "CS229"
	case WAVE:
		return "WAVE"
	default:
		return fmt.Sprintf("Container(%d)", int(c))
	}
}

// Decoder reads a whole sound from r.
//
// Decode never returns a nil sound. On failure the returned sound carries the
// same error in Err and holds no sample data.
type Decoder interface {
	Decode(r io.Reader) (*Sound, error)
}

// Encoder writes a whole sound to w.
type Encoder interface {
	Encode(w io.Writer, s *Sound) error
}

// Codec reads and writes one container format.
type Codec interface {
	Decoder
	Encoder
}

// Registry of codecs by container.
type Registry struct {
	codecs map[Container]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[Container]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(c Container, codec Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[c] = codec
}

func (r *Registry) Get(c Container) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	codec, ok := r.codecs[c]
	return codec, ok
}
