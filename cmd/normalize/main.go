// Command normalize prints the canonical key of each label given as an
// argument, or of each line read from stdin when no arguments are given.
//
// Usage:
//
//	normalize [-with-input] "Hugo, Victor (1802-1885)" ...
//	normalize [-with-input] < labels.txt
//
// With -with-input each output line is "<label>\t<key>".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// maxLineBytes bounds one stdin line.
const maxLineBytes = 1 << 20

func main() {
	withInput := flag.Bool("with-input", false, "prefix each key with its input label and a tab")
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if flag.NArg() > 0 {
		for _, label := range flag.Args() {
			writeKey(out, label, *withInput)
		}
		return
	}

	if err := normalizeLines(os.Stdin, out, *withInput); err != nil {
		out.Flush()
		log.Fatalf("normalize: %v", err)
	}
}

func normalizeLines(in io.Reader, out io.Writer, withInput bool) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		writeKey(out, sc.Text(), withInput)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func writeKey(out io.Writer, label string, withInput bool) {
	key := domain.NormalizeEntry(label)
	if withInput {
		fmt.Fprintf(out, "%s\t%s\n", label, key)
		return
	}
	fmt.Fprintln(out, key)
}
