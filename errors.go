package huffman

import (
	"github.com/pkg/errors"
)

// ErrMalformedPayload is returned when a Payload cannot be decoded: the bit
// stream ends partway through a code, the stream disagrees with the recorded
// symbol count, or the serialized form is corrupt.
var ErrMalformedPayload = errors.New("malformed Huffman payload")

// ErrMalformedTree is returned when a Huffman tree violates its structural
// laws.  Errors that match ErrMalformedTree also match ErrMalformedPayload.
var ErrMalformedTree = malformedTreeError{}

type malformedTreeError struct{}

func (malformedTreeError) Error() string {
	return "malformed Huffman tree"
}

func (malformedTreeError) Is(target error) bool {
	return target == ErrMalformedPayload || target == ErrMalformedTree
}

func malformedPayloadf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedPayload, format, args...)
}

func malformedTreef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedTree, format, args...)
}
