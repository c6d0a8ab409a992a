// SPDX-License-Identifier: EPL-2.0

// Package cs229 reads and writes the CS229 line-oriented text sound format.
//
// A CS229 document starts with a magic line, then keyword lines, then one
// line of decimal samples per frame:
//
//	CS229
//	Samples 2
//	Channels 2
//	BitRes 16
//	SampleRate 8000
//	StartData
//	100 -100
//	0 32767
//
// Keywords are case-insensitive. Lines that are empty, start with '#' or
// start with whitespace are comments. The Samples keyword is informational;
// the decoder reads frames until the stream ends.
//
// # Sample Ranges
//
// 8-bit values lie in [-127, 127], 16-bit values in [-32768, 32767] and 32-bit
// values in the full signed 32-bit range. Anything else is rejected with
// audio.ErrInvalidSampleData.
//
// # Decoding
//
//	s, err := cs229.Decoder{}.Decode(file)
//	if err != nil {
//	    // s.Err holds the same error
//	}
//
// # Encoding
//
//	err := cs229.Encoder{}.Encode(os.Stdout, s)
//
// 8-bit sounds held in WAVE convention are converted to signed samples on a
// copy before writing.
package cs229

// Codec bundles the CS229 Decoder and Encoder for registration.
type Codec struct {
	Decoder
	Encoder
}
