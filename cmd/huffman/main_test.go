package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	packed := filepath.Join(dir, "plain.huff")
	unpacked := filepath.Join(dir, "unpacked.txt")

	input := []byte("el perro de san roque no tiene rabo")
	if err := os.WriteFile(plain, input, 0666); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v", "encode", plain, packed}, nil, &stdout, &stderr); code != exitOK {
		t.Fatalf("encode: exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "[INFO] encoded 35 bytes") {
		t.Errorf("missing progress log: %q", stderr.String())
	}

	if code := run([]string{"decode", packed, unpacked}, nil, &stdout, &stderr); code != exitOK {
		t.Fatalf("decode: exit %d: %s", code, stderr.String())
	}

	output, err := os.ReadFile(unpacked)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, output) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", input, output)
	}
}

func TestRun_Stdio(t *testing.T) {
	var packed, stderr bytes.Buffer
	if code := run([]string{"encode", "-", "-"}, strings.NewReader("aaab"), &packed, &stderr); code != exitOK {
		t.Fatalf("encode: exit %d: %s", code, stderr.String())
	}

	var unpacked bytes.Buffer
	if code := run([]string{"decode", "-", "-"}, &packed, &unpacked, &stderr); code != exitOK {
		t.Fatalf("decode: exit %d: %s", code, stderr.String())
	}
	if unpacked.String() != "aaab" {
		t.Errorf("wrong output: %q", unpacked.String())
	}
}

func TestRun_Dump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"dump", "-"}, strings.NewReader("aaab"), &stdout, &stderr); code != exitOK {
		t.Fatalf("dump: exit %d: %s", code, stderr.String())
	}

	expect := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 1\n",
		"\tEncode(97) = \"1\"\n",
		"\tEncode(98) = \"0\"\n",
		"}\n",
		"TotalBits() = 4\n",
	}, "")
	if actual := stdout.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestRun_Errors(t *testing.T) {
	type testRow struct {
		name  string
		args  []string
		stdin string
		code  int
	}

	testData := [...]testRow{
		{"no-args", nil, "", exitUsage},
		{"unknown-action", []string{"squash", "a", "b"}, "", exitUsage},
		{"missing-output", []string{"encode", "a"}, "", exitUsage},
		{"missing-input", []string{"encode", filepath.Join(t.TempDir(), "nope"), "-"}, "", exitError},
		{"corrupt-payload", []string{"decode", "-", "-"}, "\x0a\x01", exitError},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(row.args, strings.NewReader(row.stdin), &stdout, &stderr); code != row.code {
				t.Errorf("expected exit %d, got %d: %s", row.code, code, stderr.String())
			}
		})
	}
}
