package huffman

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies counts the occurrences of each byte value in data.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Total returns the sum of all frequencies.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum = addSaturating(sum, freq)
	}
	return sum
}

// Distinct returns the number of Symbols with a non-zero frequency.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = ^uint64(0)
	}
	return sum
}
