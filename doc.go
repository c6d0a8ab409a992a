// SPDX-License-Identifier: EPL-2.0

// Package sndkit loads, converts and writes PCM sounds held in the CS229
// text format or in RIFF/WAVE files.
//
// # Supported Formats
//
//   - CS229 text via formats/cs229 (read and write)
//   - WAVE, PCM 8/16/32-bit, via formats/wav (read and write)
//   - AIFF via formats/aiff (import only)
//
// # Quick Start
//
// LoadSound detects the format from the stream, so callers do not pick a
// decoder:
//
//	file, _ := os.Open("voice.cs229")
//	s, err := sndkit.LoadSound(file, "voice.cs229")
//	if err != nil {
//	    // s.Err holds the same error
//	}
//	defer sndkit.UnloadSound(s)
//
//	out, _ := os.Create("voice.wav")
//	err = sndkit.WriteSound(s, out, audio.WAVE)
//
// # Transformations
//
// Loaded sounds are edited with the audio package: bit depth widening,
// channel padding and isolation, frame padding, gain, concatenation, mixing
// and channel stacking:
//
//	err := audio.Concatenate(first, second)
//	err = first.Scale(0.5)
//
// # Codecs
//
// DefaultRegistry holds the CS229 and WAVE codecs keyed by audio.Container.
// The codecs can also be used directly, e.g. wav.Decoder{}.Decode(r).
//
// See the individual subpackages for more detailed documentation.
package sndkit
