// Command lucentc runs the Lucent semantic analyzer over a single source
// file: read, parse, analyze, report.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"lucent/internal/analyzer"
	"lucent/internal/parser"
	"lucent/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: lucentc <file.lc>")
		os.Exit(1)
	}

	path := os.Args[1]
	start := time.Now()

	prog, err := parser.ParseFile(path)
	if err != nil {
		fmt.Print(render.Diagnostic(path, err))
		color.Red("compilation failed after %s", formatDuration(time.Since(start)))
		os.Exit(1)
	}

	if err := analyzer.New().Analyze(prog); err != nil {
		fmt.Print(render.Diagnostic(path, err))
		color.Red("compilation failed after %s", formatDuration(time.Since(start)))
		os.Exit(1)
	}

	color.Green("%s is well-formed (%s)", path, formatDuration(time.Since(start)))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%dµs", d.Nanoseconds()/1e3)
	}
}
