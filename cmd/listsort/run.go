package main

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/iliodor1/own-array-list/internal/listio"
	"github.com/iliodor1/own-array-list/internal/order"
	"github.com/iliodor1/own-array-list/internal/pipeline"
	"github.com/iliodor1/own-array-list/internal/trace"
	"github.com/iliodor1/own-array-list/pkg/config"
	"github.com/iliodor1/own-array-list/pkg/dynlist"
	"github.com/iliodor1/own-array-list/pkg/minio"
	"github.com/iliodor1/own-array-list/pkg/quicksort"
)

const objectPrefix = "listsort"

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	setupLogging(opts.verbose, cfg.LogMicros, stderr)

	// -1 is the flag default and means "use the configured capacity"
	if opts.capacity < -1 {
		return fmt.Errorf("capacity must not be negative, got %d", opts.capacity)
	}
	capacity := cfg.InitialCapacity
	if opts.capacity >= 0 {
		capacity = opts.capacity
	}
	if opts.removeObject && opts.object == "" {
		return fmt.Errorf("-remove-object needs -object")
	}

	ctx := context.Background()
	if opts.object != "" || opts.put != "" || opts.list {
		if err := minio.Setup(cfg.Minio); err != nil {
			return err
		}
	}
	if opts.list {
		return listObjects(ctx, stdout)
	}

	input, err := openInput(ctx, opts, stdin)
	if err != nil {
		return err
	}
	lines, err := listio.ReadLines(input)
	if err != nil {
		return err
	}
	log.Printf("read %d elements", len(lines))

	var output bytes.Buffer
	if opts.numeric {
		err = runNumbers(lines, opts, capacity, &output, stderr)
	} else {
		err = runStrings(lines, opts, capacity, &output, stderr)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(opts, output.Bytes(), stdout); err != nil {
		return err
	}
	if opts.put != "" {
		key := opts.put
		if key == "auto" {
			key = minio.NewObjectKey(objectPrefix, listio.Extension(opts.format))
		}
		repo := minio.GetRepository()
		if err := repo.CreateFile(ctx, key, output.Bytes(), listio.ContentType(opts.format)); err != nil {
			return fmt.Errorf("storing %s: %w", key, err)
		}
		fmt.Fprintf(stderr, "stored %s/%s\n", repo.BucketName(), key)
	}
	if opts.removeObject {
		if err := minio.GetRepository().DeleteFile(ctx, opts.object); err != nil {
			return fmt.Errorf("removing %s: %w", opts.object, err)
		}
		log.Printf("removed object %s", opts.object)
	}
	return nil
}

// listObjects prints the keys of the lists stored under objectPrefix, one per line.
func listObjects(ctx context.Context, stdout io.Writer) error {
	keys, err := minio.GetRepository().ListFiles(ctx, objectPrefix+"/")
	if err != nil {
		return fmt.Errorf("listing %s: %w", objectPrefix, err)
	}
	log.Printf("found %d objects under %s/", len(keys), objectPrefix)
	return listio.Write(stdout, listio.FormatText, keys)
}

func openInput(ctx context.Context, opts *options, stdin io.Reader) (io.Reader, error) {
	if opts.object != "" {
		contents, err := minio.GetRepository().ReadFile(ctx, opts.object)
		if err != nil {
			return nil, err
		}
		log.Printf("loaded object %s (%d bytes)", opts.object, len(contents))
		return bytes.NewReader(contents), nil
	}
	if opts.inputFile != "" {
		contents, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		return bytes.NewReader(contents), nil
	}
	return stdin, nil
}

func writeOutput(opts *options, contents []byte, stdout io.Writer) error {
	if opts.outputFile == "" {
		_, err := stdout.Write(contents)
		return err
	}
	if err := os.WriteFile(opts.outputFile, contents, 0o644); err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	return nil
}

func runStrings(lines []string, opts *options, capacity int, output io.Writer, stderr io.Writer) error {
	compare, err := order.Strings(opts.order)
	if err != nil {
		return err
	}
	var inserts []pipeline.Insert[string]
	for _, arg := range opts.inserts {
		index, value, err := pipeline.ParseInsert(arg)
		if err != nil {
			return err
		}
		inserts = append(inserts, pipeline.Insert[string]{Index: index, Value: value})
	}
	return execute(lines, inserts, opts, capacity, sortPlan[string]{
		compare:        compare,
		natural:        quicksort.Sort[string],
		naturalCompare: cmp.Compare[string],
	}, output, stderr)
}

func runNumbers(lines []string, opts *options, capacity int, output io.Writer, stderr io.Writer) error {
	compare, err := order.Int64s(opts.order)
	if err != nil {
		return err
	}
	numbers, err := listio.ParseInts(lines)
	if err != nil {
		return err
	}
	var inserts []pipeline.Insert[int64]
	for _, arg := range opts.inserts {
		index, value, err := pipeline.ParseInsert(arg)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("insert %q: %w", arg, err)
		}
		inserts = append(inserts, pipeline.Insert[int64]{Index: index, Value: n})
	}
	return execute(numbers, inserts, opts, capacity, sortPlan[int64]{
		compare:        compare,
		natural:        quicksort.Sort[int64],
		naturalCompare: cmp.Compare[int64],
	}, output, stderr)
}

type sortPlan[E any] struct {
	// nil means natural order
	compare        func(a, b E) int
	natural        func(list quicksort.List[E]) error
	naturalCompare func(a, b E) int
}

func (p sortPlan[E]) sorter(tracer quicksort.Tracer[E]) func(list *dynlist.DynamicList[E]) error {
	return func(list *dynlist.DynamicList[E]) error {
		switch {
		case tracer != nil && p.compare == nil:
			return quicksort.SortFuncTraced[E](list, p.naturalCompare, tracer)
		case tracer != nil:
			return quicksort.SortFuncTraced[E](list, p.compare, tracer)
		case p.compare == nil:
			return p.natural(list)
		default:
			return quicksort.SortFunc[E](list, p.compare)
		}
	}
}

func execute[E any](items []E, inserts []pipeline.Insert[E], opts *options, capacity int, plan sortPlan[E], output io.Writer, stderr io.Writer) error {
	var deletes []int
	for _, arg := range opts.deletes {
		index, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("delete %q: %w", arg, err)
		}
		deletes = append(deletes, index)
	}

	var collector *trace.Collector[E]
	pipelineOpts := pipeline.Options[E]{
		Capacity: capacity,
		Inserts:  inserts,
		Deletes:  deletes,
	}
	if !opts.noSort {
		if opts.trace {
			collector = trace.NewCollector[E]()
			pipelineOpts.Sorter = plan.sorter(collector)
		} else {
			pipelineOpts.Sorter = plan.sorter(nil)
		}
	}

	list, err := pipeline.Run(items, pipelineOpts)
	if err != nil {
		return err
	}
	log.Printf("list holds %d elements, capacity %d", list.Size(), list.Capacity())

	if collector != nil {
		log.Printf("%d partition steps", len(collector.Events))
		if tree := collector.Render(list.Size()); tree != "" {
			fmt.Fprintln(stderr, tree)
		}
	}
	return listio.Write(output, opts.format, list.Items())
}
