// Package padding builds SHA-256 message padding for word-aligned messages:
// a leading 1 bit, a zero fill, and the 64-bit message bit length closing
// the final 512-bit block.
package padding

import "fmt"

// BlockWords is the SHA-256 block size in 32-bit words.
const BlockWords = 16

// lengthWords plus the word carrying the leading 1 bit set the minimum
// padding; the maximum is a full extra block when the message leaves no room
// for the length.
const (
	lengthWords = 2
	minWords    = lengthWords + 1
	maxWords    = BlockWords + lengthWords
)

type LengthError struct {
	PaddingWords uint64
	MessageWords uint64
}

func (e LengthError) Error() string {
	return fmt.Sprintf("padding: %d padding words do not close a block for a %d-word message", e.PaddingWords, e.MessageWords)
}

// MessagePadding returns the paddingWords words that extend a message of
// messageLenWords 32-bit words to a whole number of blocks.
func MessagePadding(paddingWords, messageLenWords uint64) ([]uint32, error) {
	if paddingWords < minWords || paddingWords > maxWords ||
		(messageLenWords+paddingWords)%BlockWords != 0 {
		return nil, LengthError{PaddingWords: paddingWords, MessageWords: messageLenWords}
	}

	pad := make([]uint32, paddingWords)
	pad[0] = 0x80000000

	bitLen := messageLenWords * 32
	pad[paddingWords-2] = uint32(bitLen >> 32)
	pad[paddingWords-1] = uint32(bitLen)

	return pad, nil
}
