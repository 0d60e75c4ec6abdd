package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), "\"\""},
		{MakeCode(1, 0), "\"0\""},
		{MakeCode(4, 0x3), "\"0011\""},
		{MakeCode(3, 0x5), "\"101\""},
		{MakeCode(0, 0).Append(1).Append(1).Append(0), "\"110\""},
	}
	for _, row := range testData {
		if actual := row.hc.String(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		hc     Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{MakeCode(3, 0x5), MakeCode(0, 0), true},
		{MakeCode(3, 0x5), MakeCode(1, 0x1), true},
		{MakeCode(3, 0x5), MakeCode(2, 0x2), true},
		{MakeCode(3, 0x5), MakeCode(3, 0x5), true},
		{MakeCode(3, 0x5), MakeCode(2, 0x3), false},
		{MakeCode(3, 0x5), MakeCode(1, 0x0), false},
		{MakeCode(1, 0x1), MakeCode(3, 0x5), false},
		{MakeCode(64, 1<<63), MakeCode(1, 0x1), true},
		{MakeCode(64, 1<<63), MakeCode(0, 0), true},
	}
	for _, row := range testData {
		t.Run(row.hc.String()+"/"+row.prefix.String(), func(t *testing.T) {
			if actual := row.hc.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
