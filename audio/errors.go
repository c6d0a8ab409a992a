// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrEOF indicates the stream ended before a complete structure was read.
	ErrEOF = errors.New("unexpected end of file")

	// ErrRead indicates the underlying reader failed.
	ErrRead = errors.New("could not read file")

	// ErrOutOfMemory indicates a buffer would exceed MaxBufferSize.
	ErrOutOfMemory = errors.New("could not allocate memory")

	// ErrUnknownFileType indicates the magic bytes match neither CS229 nor WAVE.
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrUnsupportedBitDepth indicates a bit depth other than 8, 16 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedFormat indicates a non-PCM WAVE audio format.
	ErrUnsupportedFormat = errors.New("unsupported audio format, only PCM is supported")

	// ErrInvalidKeyword indicates an unknown keyword in a CS229 header.
	ErrInvalidKeyword = errors.New("invalid keyword in CS229 header")

	// ErrNoValue indicates a CS229 keyword without a usable numeric value.
	ErrNoValue = errors.New("no value given for a keyword")

	// ErrSampleData is the umbrella for malformed CS229 sample grids.
	ErrSampleData = errors.New("corrupted sample data")

	ErrInvalidSampleData = fmt.Errorf("%w: invalid or out of range value", ErrSampleData)
	ErrNotEnoughData     = fmt.Errorf("%w: not enough values in frame", ErrSampleData)
	ErrTooMuchData       = fmt.Errorf("%w: too many values in frame", ErrSampleData)

	// ErrIncompatibleSampleRate indicates two sounds cannot be combined.
	ErrIncompatibleSampleRate = errors.New("sounds have different sample rates")

	// ErrIncompatibleFormat indicates two sounds still differ in container or
	// bit depth where they must match.
	ErrIncompatibleFormat = errors.New("sounds have different formats")

	// ErrZeroChannels indicates an operation needs at least one channel.
	ErrZeroChannels = errors.New("sound has zero channels")

	// ErrChannelRange indicates a channel index outside the sound.
	ErrChannelRange = errors.New("channel index out of range")

	// ErrWriteMemory indicates the output would be too large to build.
	ErrWriteMemory = errors.New("could not allocate memory for output")

	// ErrWriteTooFewChars indicates the writer accepted fewer bytes than given.
	ErrWriteTooFewChars = errors.New("could not write all output")

	ErrNoSounds      = errors.New("no sounds given")
	ErrGainsMismatch = errors.New("number of gains does not match number of sounds")
)
