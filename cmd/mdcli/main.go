// Package main is a command-line demo of the editable text buffer:
// it loads a markdown file, applies a scripted edit sequence, and
// prints the result alongside line mappings and the recorded patches.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mdedit/mdedit/internal/buffer"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mdcli - gap buffer demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mdcli [options] [path/to/file.md]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("mdcli %s\n", version)
		return 0
	}

	path := "samples/sample.md"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	fmt.Println("GapBuffer CLI Demo")
	fmt.Println("==================")
	fmt.Println()
	fmt.Printf("Loading file: %s\n", path)

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	buf := buffer.New()
	buf.LoadString(string(content))

	printSeparator("ORIGINAL CONTENT")
	fmt.Println(buf.Text())
	printStats(buf, "Original")

	printSeparator("PERFORMING EDITS")

	fmt.Println("\n1. Inserting header comment at beginning...")
	buf.Insert(0, "<!-- Edited by GapBuffer CLI Demo -->\n\n")

	fmt.Println("2. Inserting text after line 3...")
	line3Start := buf.OffsetFromLine(3, 0)
	buf.Insert(line3Start, "> **Note:** This line was inserted by the demo.\n\n")

	fmt.Println("3. Appending footer at end...")
	buf.Insert(buf.Len(), "\n---\n*Modified by mdcli*\n")

	if buf.Len() > 60 {
		fmt.Println("4. Deleting 10 bytes at offset 50...")
		fmt.Printf("   Deleted text: %q\n", buf.TextRange(50, 10))
		buf.Erase(50, 10)
	}

	printSeparator("MODIFIED CONTENT")
	fmt.Println(buf.Text())
	printStats(buf, "Modified")

	printSeparator("LINE/OFFSET MAPPING DEMO")
	printLineMap(buf, 5)

	printSeparator("PATCH HISTORY")
	printPatches(buf.FlushPatches())

	fmt.Println("\nDemo completed successfully!")
	return 0
}

func printSeparator(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 60), title, strings.Repeat("=", 60))
}

func printStats(buf *buffer.GapBuffer, label string) {
	fmt.Printf("[%s] Length: %d bytes, Lines: %d\n", label, buf.Len(), buf.LineCount())
}

// printLineMap shows the first maxLines lines with their byte offsets.
func printLineMap(buf *buffer.GapBuffer, maxLines int) {
	count := buf.LineCount()
	if count < maxLines {
		maxLines = count
	}
	fmt.Printf("First %d lines:\n\n", maxLines)

	for line := 0; line < maxLines; line++ {
		offset := buf.OffsetFromLine(line, 0)
		nextOffset := buf.Len()
		if line+1 < count {
			nextOffset = buf.OffsetFromLine(line+1, 0)
		}

		text := strings.TrimSuffix(buf.TextRange(offset, nextOffset-offset), "\n")
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		fmt.Printf("  Line %d (offset %d): %q\n", line, offset, text)
	}
}

func printPatches(patches []buffer.Patch) {
	fmt.Printf("Total patches: %d\n\n", len(patches))
	for i, p := range patches {
		fmt.Printf("Patch %d:\n", i)
		fmt.Printf("  Start: %d\n", p.Start)
		fmt.Printf("  Removed: %d bytes\n", p.RemovedLen)
		fmt.Printf("  Inserted: %d bytes", len(p.InsertedText))
		if n := len(p.InsertedText); n > 0 && n <= 30 {
			fmt.Printf(" (%q)", p.InsertedText)
		}
		fmt.Printf("\n\n")
	}
}
