// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM RIFF/WAVE files.
//
// # Supported Formats
//
//   - PCM only (audio format 1)
//   - 8-bit unsigned, 16-bit and 32-bit signed samples
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
// The Decoder walks the RIFF chunks, skipping anything it does not know
// (word-aligned), until it has read a "fmt " chunk and the "data" chunk after
// it:
//
//	file, _ := os.Open("audio.wav")
//	s, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // s.Err holds the same error
//	}
//
// Samples are copied verbatim, so 8-bit data stays unsigned with silence at
// 128.
//
// # Encoding WAV Files
//
// The Encoder writes the canonical 44-byte header, the sample data, and a
// zero pad byte when the data size is odd:
//
//	err := wav.Encoder{}.Encode(out, s)
//
// 8-bit sounds held in CS229 convention are converted on a copy first.
//
// # Error Handling
//
// Failures use the audio package sentinels:
//   - audio.ErrUnknownFileType: missing RIFF or WAVE tag
//   - audio.ErrUnsupportedFormat: not PCM
//   - audio.ErrUnsupportedBitDepth: bits per sample other than 8, 16 or 32
//   - audio.ErrEOF, audio.ErrRead: the stream ended early or failed
package wav

// Codec bundles the WAVE Decoder and Encoder for registration.
type Codec struct {
	Decoder
	Encoder
}
