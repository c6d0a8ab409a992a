// SPDX-License-Identifier: EPL-2.0

// Package aiff imports AIFF (Audio Interchange File Format) files as sounds.
//
// Decoding is delegated to github.com/go-audio/aiff; this package turns the
// decoded amplitudes into an audio.Sound. Only import is supported, and
// sounds are written back out as CS229 or WAVE.
//
// # Supported Formats
//
//   - Uncompressed AIFF
//   - 8, 16 and 32-bit samples
//   - Any channel count and sample rate
//
// # Decoding
//
//	file, _ := os.Open("audio.aif")
//	s, err := aiff.Decoder{}.Decode(file)
//
// The decoded sound uses the WAVE convention, so 8-bit samples are stored
// unsigned. A reader that cannot seek is read fully into memory first.
//
// # Error Handling
//
// Failures use the audio package sentinels:
//   - audio.ErrUnknownFileType: not an AIFF file
//   - audio.ErrUnsupportedBitDepth: 24-bit or other widths
//   - audio.ErrRead: the stream failed
//
// # AIFF vs. WAV
//
// AIFF stores big-endian samples and an 80-bit floating point sample rate.
// Sounds keep little-endian samples whatever they were imported from.
package aiff
