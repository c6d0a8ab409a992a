// SPDX-License-Identifier: EPL-2.0

// Package audio holds the in-memory sound model and the transformations
// applied to it.
//
// # Sound
//
// A Sound is a complete PCM buffer together with its sample rate, bit depth,
// channel count and the container convention its samples follow:
//
//	s := audio.NewSound("tone.cs229")
//	s.SampleRate, s.BitDepth, s.Channels = 8000, 16, 1
//
// Samples are interleaved by frame and stored little-endian in 1, 2 or 4
// bytes. 8-bit samples are signed in CS229 sounds and unsigned (offset by
// 128) in WAVE sounds. All other widths are signed in both containers.
//
// # Transformations
//
// Sounds are combined with Concatenate, Mix and StackChannels, or in bulk
// with ConcatenateAll and MixAll. Each of these first checks that the sample
// rates match and then equalises the operands:
//
//	if err := audio.Concatenate(dst, src); err != nil {
//	    return err
//	}
//
// Bit depth is only ever widened (ScaleBitDepth), channels and frames are
// only ever appended as silence (AddChannels, AddFrames).
//
// # Codecs
//
// Readers and writers for each container implement Decoder and Encoder and
// are looked up through a Registry:
//
//	registry := audio.NewRegistry()
//	registry.Register(audio.CS229, cs229.Codec{})
//	codec, _ := registry.Get(audio.CS229)
//
// # Error Handling
//
// Failures are reported with the sentinel errors in this package and can be
// tested with errors.Is. The malformed-grid errors all wrap ErrSampleData:
//
//	if errors.Is(err, audio.ErrSampleData) {
//	    // bad sample values in a CS229 file
//	}
package audio
