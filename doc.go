// Package huffman implements a byte-oriented Huffman codec.  Encode counts
// the frequency of every byte value in its input, builds a Huffman tree from
// those frequencies, and packs the input into an MSB-first bit stream using
// the resulting prefix-free code.  Decode walks the same tree bit by bit to
// recover the input.
//
// The tree travels with the data inside a Payload, so decoding never needs to
// re-derive frequencies.  Payload implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
