package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `listsort - load a list of elements, edit it, sort it and write it out

Elements are read one per line. Inserts are applied first, then deletes,
then the list is sorted.

Usage:
  listsort [options] < input.txt

Options:
`

const DEFAULT_FORMAT = "text"

// stringsFlag collects a flag that may be given several times.
type stringsFlag []string

func (s *stringsFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringsFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type options struct {
	envFile      string
	inputFile    string
	outputFile   string
	object       string
	put          string
	removeObject bool
	list         bool
	numeric      bool
	order        string
	noSort       bool
	inserts      stringsFlag
	deletes      stringsFlag
	capacity     int
	format       string
	trace        bool
	verbose      bool
}

func main() {
	var showHelp, showVersion bool
	var opts options

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		flag.PrintDefaults()
	}

	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.StringVar(&opts.envFile, "env", "", "Dotenv file with LISTSORT_* and MINIO_* settings (optional)")
	flag.StringVar(&opts.inputFile, "input", "", "Input file (defaults to stdin)")
	flag.StringVar(&opts.outputFile, "output", "", "Output file (defaults to stdout)")
	flag.StringVar(&opts.object, "object", "", "Read the input from this MinIO object instead of a file")
	flag.StringVar(&opts.put, "put", "", "Also store the output as this MinIO object; 'auto' generates a key")
	flag.BoolVar(&opts.removeObject, "remove-object", false, "Delete the -object input once the output has been written")
	flag.BoolVar(&opts.list, "list", false, "Print the keys of the lists stored under listsort/ and exit")
	flag.BoolVar(&opts.numeric, "numeric", false, "Treat elements as 64-bit integers")
	flag.StringVar(&opts.order, "order", "natural", "Sort order: natural, comparator, reverse, fold, length (fold and length need text elements)")
	flag.BoolVar(&opts.noSort, "no-sort", false, "Keep the list in its loaded order")
	flag.Var(&opts.inserts, "insert", "Insert an element, as index:value (repeatable)")
	flag.Var(&opts.deletes, "delete", "Delete the element at an index (repeatable)")
	flag.IntVar(&opts.capacity, "capacity", -1, "Initial list capacity (defaults to LISTSORT_INITIAL_CAPACITY)")
	flag.StringVar(&opts.format, "f", DEFAULT_FORMAT, "Output format (text, json, yaml)")
	flag.StringVar(&opts.format, "format", DEFAULT_FORMAT, "Output format (text, json, yaml)")
	flag.BoolVar(&opts.trace, "trace", false, "Print the quicksort partition tree to stderr (deep trees are cut off, meant for small inputs)")
	flag.BoolVar(&opts.verbose, "verbose", false, "Log progress to stderr")

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("listsort version %s\n", Version)
		os.Exit(0)
	}

	// Reject any positional arguments.
	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(&opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool, micros bool, stderr io.Writer) {
	flags := log.Ldate | log.Ltime
	if micros {
		flags |= log.Lmicroseconds
	}
	log.SetFlags(flags)
	if verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}
