// Command pyth is the CLI front-end: argument parsing, file reading and
// stdin capture live here, outside the source-bytes-to-printed-output
// boundary that package interp owns. The "-d" flag only requests the
// debug dump (interp.WithDebug); package interp produces it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/orlp/pyth5/interp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pyth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		code  string
		debug bool
		watch string
	)
	fs.StringVar(&code, "c", "", "run inline source")
	fs.StringVar(&code, "code", "", "run inline source")
	fs.BoolVar(&debug, "d", false, "print the debug dump before evaluation")
	fs.BoolVar(&debug, "debug", false, "print the debug dump before evaluation")
	fs.StringVar(&watch, "watch", "", "re-run FILE whenever it changes on disk")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if watch != "" {
		return runWatch(watch, debug, stdin, stdout, stderr)
	}

	file := fs.Arg(0)
	if code == "" && file == "" {
		fmt.Fprintln(stderr, "pyth: one of FILE or -c/--code is required")
		return 2
	}
	if code != "" && file != "" {
		fmt.Fprintln(stderr, "pyth: FILE and -c/--code are mutually exclusive")
		return 2
	}

	var src []byte
	if code != "" {
		src = []byte(code)
	} else {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "pyth: %v\n", err)
			return 1
		}
		src = b
	}

	return runOnce(src, debug, stdin, stdout, stderr, nil)
}

func runOnce(src []byte, debug bool, stdin io.Reader, stdout, stderr io.Writer, cache *interp.Cache) int {
	stdinText, err := readAllIfPiped(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "pyth: reading stdin: %v\n", err)
		return 1
	}

	opts := []interp.Option{interp.WithStdin(stdinText)}
	if debug {
		opts = append(opts, interp.WithDebug())
	}
	if cache != nil {
		opts = append(opts, interp.WithCache(cache))
	}

	out, runErr := interp.Interpret(src, opts...)
	io.WriteString(stdout, out)
	if runErr != nil {
		fmt.Fprintf(stderr, "pyth: %v\n", runErr)
		return 1
	}
	return 0
}

// readAllIfPiped reads stdin in full when it is not an interactive
// terminal, so the "Q" preset is populated for pipelines without
// blocking a program that never references Q when run interactively.
func readAllIfPiped(stdin io.Reader) (string, error) {
	f, ok := stdin.(*os.File)
	if !ok {
		b, err := io.ReadAll(bufio.NewReader(stdin))
		return string(b), err
	}
	info, err := f.Stat()
	if err != nil || (info.Mode()&os.ModeCharDevice) != 0 {
		return "", nil
	}
	b, err := io.ReadAll(f)
	return string(b), err
}

// runWatch implements "--watch FILE": re-run on every write, reusing a
// single interp.Cache across runs so a write that leaves the file's
// preprocessed source byte-identical skips re-parsing.
func runWatch(file string, debug bool, stdin io.Reader, stdout, stderr io.Writer) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(stderr, "pyth: %v\n", err)
		return 1
	}
	defer watcher.Close()

	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintf(stderr, "pyth: %v\n", err)
		return 1
	}

	cache := interp.NewCache()
	runFile := func() int {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "pyth: %v\n", err)
			return 1
		}
		return runOnce(src, debug, stdin, stdout, stderr, cache)
	}

	runFile()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if filepath.Clean(ev.Name) != filepath.Clean(file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runFile()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintf(stderr, "pyth: watch error: %v\n", err)
		}
	}
}
