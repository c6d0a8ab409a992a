// SPDX-License-Identifier: EPL-2.0

package sndkit

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ik5/sndkit/audio"
	"github.com/ik5/sndkit/formats/aiff"
	"github.com/ik5/sndkit/formats/cs229"
	"github.com/ik5/sndkit/formats/wav"
	"github.com/ik5/sndkit/internal/bytesource"
)

var defaultRegistry = sync.OnceValue(func() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(audio.CS229, cs229.Codec{})
	reg.Register(audio.WAVE, wav.Codec{})
	return reg
})

// DefaultRegistry returns the shared registry holding the CS229 and WAVE
// codecs.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry()
}

// Detect reports which container the stream behind br holds, judging by its
// first bytes. Nothing is consumed.
//
// A stream starting with "RIFF" is WAVE, one starting with "CS229" in any
// letter case is CS229. Anything else is audio.ErrUnknownFileType, and a
// stream too short to tell is audio.ErrEOF.
func Detect(br *bytesource.Reader) (audio.Container, error) {
	head, err := br.Peek(len(cs229.Magic))
	if len(head) >= len(wav.RIFF) && string(head[:len(wav.RIFF)]) == wav.RIFF {
		return audio.WAVE, nil
	}
	if err != nil {
		return 0, err
	}
	if strings.EqualFold(string(head), cs229.Magic) {
		return audio.CS229, nil
	}
	return 0, audio.ErrUnknownFileType
}

// LoadSound reads a whole sound from r and names it name. The format is
// detected from the stream itself. AIFF input is imported as well and comes
// back in WAVE convention.
//
// The returned sound is never nil. On failure it carries the error in Err.
func LoadSound(r io.Reader, name string) (*audio.Sound, error) {
	br := bytesource.New(r)

	dec, err := decoderFor(br)
	if err != nil {
		s := audio.NewSound(name)
		return s, s.Fail(err)
	}

	s, err := dec.Decode(br)
	s.Name = name
	return s, err
}

// LoadFile opens path and loads the sound it holds, named after the path.
func LoadFile(path string) (*audio.Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		s := audio.NewSound(path)
		return s, s.Fail(fmt.Errorf("%w: %w", audio.ErrRead, err))
	}
	defer f.Close()

	return LoadSound(f, path)
}

func decoderFor(br *bytesource.Reader) (audio.Decoder, error) {
	if head, err := br.Peek(len(aiff.Magic)); err == nil && string(head) == aiff.Magic {
		return aiff.Decoder{}, nil
	}

	c, err := Detect(br)
	if err != nil {
		return nil, err
	}
	codec, ok := DefaultRegistry().Get(c)
	if !ok {
		return nil, audio.ErrUnknownFileType
	}
	return codec, nil
}

// WriteSound encodes s to w in the target container. The sound itself is
// not modified; convention changes happen on a copy. A sound that failed to
// load is not written and its error is returned.
func WriteSound(s *audio.Sound, w io.Writer, target audio.Container) error {
	if s.Err != nil {
		return s.Err
	}
	codec, ok := DefaultRegistry().Get(target)
	if !ok {
		return fmt.Errorf("%w: %s", audio.ErrUnknownFileType, target)
	}
	return codec.Encode(w, s)
}

// UnloadSound releases the sample buffer and name held by s. It is safe on a
// nil sound and when called more than once.
func UnloadSound(s *audio.Sound) {
	s.Release()
}
