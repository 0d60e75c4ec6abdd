// Command huffman compresses and decompresses files with a byte-oriented
// Huffman code.
//
// Usage:
//
//     huffman [-v] encode INPUT OUTPUT
//     huffman [-v] decode INPUT OUTPUT
//     huffman [-v] dump INPUT
//
// A path of "-" means standard input or standard output.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffman/v2"
	"github.com/chronos-tachyon/huffman/v2/internal/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type command struct {
	logg   logger.Logger
	stdin  io.Reader
	stdout io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log progress to standard error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huffman [-v] encode INPUT OUTPUT")
		fmt.Fprintln(stderr, "       huffman [-v] decode INPUT OUTPUT")
		fmt.Fprintln(stderr, "       huffman [-v] dump INPUT")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cmd := command{
		logg:   logger.New(stderr, *verbose),
		stdin:  stdin,
		stdout: stdout,
	}

	var err error
	switch action := fs.Arg(0); {
	case action == "encode" && fs.NArg() == 3:
		err = cmd.encode(fs.Arg(1), fs.Arg(2))
	case action == "decode" && fs.NArg() == 3:
		err = cmd.decode(fs.Arg(1), fs.Arg(2))
	case action == "dump" && fs.NArg() == 2:
		err = cmd.dump(fs.Arg(1))
	default:
		fs.Usage()
		return exitUsage
	}

	if err != nil {
		cmd.logg.Errorf("%v", err)
		return exitError
	}
	return exitOK
}

func (cmd command) encode(inPath, outPath string) error {
	data, err := cmd.readInput(inPath)
	if err != nil {
		return err
	}

	p := huffman.Encode(data)
	raw, err := p.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "failed to marshal payload")
	}

	cmd.logg.Infof("encoded %d bytes as %d bits of code in a %d-byte payload", len(data), p.TotalBits(), len(raw))
	return cmd.writeOutput(outPath, raw)
}

func (cmd command) decode(inPath, outPath string) error {
	raw, err := cmd.readInput(inPath)
	if err != nil {
		return err
	}

	var p huffman.Payload
	if err := p.UnmarshalBinary(raw); err != nil {
		return errors.Wrapf(err, "failed to unmarshal payload from %s", inPath)
	}

	data, err := huffman.Decode(p)
	if err != nil {
		return errors.Wrapf(err, "failed to decode payload from %s", inPath)
	}

	cmd.logg.Infof("decoded %d bits of code into %d bytes", p.TotalBits(), len(data))
	return cmd.writeOutput(outPath, data)
}

func (cmd command) dump(inPath string) error {
	data, err := cmd.readInput(inPath)
	if err != nil {
		return err
	}

	e := huffman.NewEncoder(huffman.CountFrequencies(data))
	if _, err := e.Dump(cmd.stdout); err != nil {
		return errors.Wrap(err, "failed to write dump")
	}

	p := e.EncodeBytes(data)
	_, err = fmt.Fprintf(cmd.stdout, "TotalBits() = %d\n", p.TotalBits())
	return errors.WithStack(err)
}

func (cmd command) readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.stdin)
		return data, errors.Wrap(err, "failed to read standard input")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "failed to read %s", path)
}

func (cmd command) writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := cmd.stdout.Write(data)
		return errors.Wrap(err, "failed to write standard output")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0666), "failed to write %s", path)
}
