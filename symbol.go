package huffman

// Symbol represents a symbol in the byte alphabet.
type Symbol byte

// NumSymbols is the number of symbols in the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
