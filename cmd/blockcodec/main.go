// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary encodes JSON values read from stdin as a block-token
// stream on stdout, and can inspect a block-token stream for alphabet
// validity. It does not decode a block stream back into JSON: the
// decoder is schema-driven and the wire format carries no
// self-describing "any" tag, so reconstructing an untyped value from
// raw blocks alone is not a supported operation.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.blockwire.dev/blocks"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	inspectMode := flag.Bool("i", false, "Inspect a block-token stream on stdin for alphabet validity")
	oneLine := flag.Bool("l", false, "On encode, print one block name per line instead of space-separated")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "blockcodec encodes a JSON value on stdin as a block-token stream on stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  blockcodec [-l]      encode JSON to blocks\n  blockcodec -i        validate a block stream\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	var err error
	if *inspectMode {
		err = runInspect(os.Stdin, os.Stdout)
	} else {
		err = runEncode(os.Stdin, os.Stdout, *oneLine)
	}
	if err != nil {
		log.Fatalf("blockcodec: %v", err)
	}
}

func runEncode(r io.Reader, w io.Writer, oneLine bool) error {
	var v any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	bs, err := blocks.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}

	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name()
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	sep := " "
	if oneLine {
		sep = "\n"
	}
	_, err = fmt.Fprintln(bw, strings.Join(names, sep))
	return err
}

// runInspect validates that every whitespace-separated token on stdin
// names a real alphabet member and prints each one's family, surfacing
// structure without reconstructing a value from it.
func runInspect(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fields := strings.Fields(string(data))
	for i, name := range fields {
		b, err := blocks.Lookup(name)
		if err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		fmt.Fprintf(bw, "%-40s %s\n", b.Name(), b.Family())
	}
	return nil
}
