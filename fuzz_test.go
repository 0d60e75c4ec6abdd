package huffman

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("aaab"))
	f.Add([]byte("el perro de san roque no tiene rabo"))
	f.Add([]byte{0x00, 0xff, 0x00, 0x80, 0x7f})

	f.Fuzz(func(t *testing.T, input []byte) {
		p := Encode(input)
		raw, err := p.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary failed: %v", err)
		}

		var q Payload
		if err := q.UnmarshalBinary(raw); err != nil {
			t.Fatalf("UnmarshalBinary failed: %v", err)
		}

		out, err := Decode(q)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(out, input) {
			t.Errorf("Roundtrip failed.\nOriginal: %q\nDecoded: %q", input, out)
		}
	})
}

func FuzzUnmarshal(f *testing.F) {
	for _, input := range []string{"", "a", "aaab", "hello, world"} {
		raw, err := Encode([]byte(input)).MarshalBinary()
		if err != nil {
			f.Fatalf("MarshalBinary failed: %v", err)
		}
		f.Add(raw)
	}

	f.Fuzz(func(t *testing.T, raw []byte) {
		var p Payload
		if err := p.UnmarshalBinary(raw); err != nil {
			t.Skip()
		}
		// Arbitrary payloads must fail cleanly rather than panic or loop,
		// and output is bounded by the code bits present.
		out, err := Decode(p)
		if err == nil && uint64(len(out)) > 8*uint64(len(p.Data)) {
			t.Errorf("decoded %d symbols from %d bytes of data", len(out), len(p.Data))
		}
	})
}
