// Package aoc are quick & dirty utilities for helping solve Advent of Code
// problems. (forked from maisem/aoc, which forked bradfitz/aoc)
package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/maps"
)

var (
	// ErrSampleMismatch is returned when a part's answer for its sample
	// input differs from the want= line in its doc comment.
	ErrSampleMismatch = errors.New("sample answer mismatch")

	// ErrAnswerMismatch is returned when a part's answer differs from the
	// one recorded in answers.yaml.
	ErrAnswerMismatch = errors.New("answer mismatch")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous sample in the file.
func extractSamples(filename string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples extracts samples from every .go file at the root of fsys.
func extractAllSamples(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		got, err := extractSamples(name, src)
		if err != nil {
			return nil, err
		}
		for fn, s := range got {
			if _, dup := samples[fn]; dup {
				return nil, fmt.Errorf("%s: duplicate sample for %s", name, fn)
			}
			samples[fn] = s
		}
	}
	return samples, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on x, a pointer to a
// struct. The methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() any); !ok {
			return nil, fmt.Errorf("solver method %s has type %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	inputDir   string
}

type runner struct {
	year    int
	solver  any
	samples map[string]sample
	answers Answers
	opts    options
	out     io.Writer
	log     *zap.SugaredLogger
}

func (r *runner) runDay(day day) error {
	p := &Puzzle{
		year:     r.year,
		day:      day,
		samples:  r.samples,
		inputDir: r.opts.inputDir,
		log:      r.log.With("day", day.day),
	}
	fmt.Fprintln(r.out, "Running day", day.day)
	sr := reflect.ValueOf(r.solver)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range day.parts {
		p.solver = ps
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}
		fn := sr.MethodByName(ps.Name).Interface().(func() any)

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if sm {
				if _, ok := r.samples[ps.Name]; !ok {
					p.log.Warnw("no sample", "part", ps.Part)
					continue
				}
			} else if err := p.loadInput(); err != nil {
				return err
			}
			t0 := time.Now()
			got := fmt.Sprint(fn())
			took := time.Since(t0).Round(time.Microsecond)
			p.log.Debugw("solved", "part", ps.Part, "sample", sm, "took", took)
			if sm {
				sample := p.Sample()
				if got != sample.want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("day %d part %s: got %v, want %v: %w", day.day, ps.Part, got, sample.want, ErrSampleMismatch)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
				continue
			}
			want, ok := r.answers.Lookup(day.day, ps.Part)
			switch {
			case !ok:
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, took)
			case got == want:
				fmt.Fprintf(r.out, "part %s: %v ✅ (took %v) \n", ps.Part, got, took)
			default:
				fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
				return fmt.Errorf("day %d part %s: got %v, want %v: %w", day.day, ps.Part, got, want, ErrAnswerMismatch)
			}
		}
	}
	return nil
}

func (r *runner) run(days map[int]day) error {
	if r.opts.day != -1 {
		day, ok := days[r.opts.day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.day)
		}
		return r.runDay(day)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, day := range dayNums {
		if err := r.runDay(days[day]); err != nil {
			r.log.Errorw("day failed", "day", day, "error", err)
			errs = append(errs, err)
		}
		fmt.Fprintln(r.out)
	}
	return errors.Join(errs...)
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.DisableStacktrace = true
	return config.Build()
}

// Command returns the command that runs the puzzles of year on slvr.
//
// slvr must be a pointer to a struct embedding *Puzzle, with methods named
// D{day}p{part}. Samples are read from the doc comments of the .go files in
// sources, and expected answers from answers.yaml in sources if present.
func Command(year int, sources fs.FS, slvr any) *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Run Advent of Code %d solutions", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(opts.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := extractAllSamples(sources)
			if err != nil {
				return err
			}
			answers, err := LoadAnswers(sources, "answers.yaml")
			if err != nil {
				return err
			}
			days, err := extractMethods(slvr)
			if err != nil {
				return err
			}
			r := &runner{
				year:    year,
				solver:  slvr,
				samples: samples,
				answers: answers,
				opts:    opts,
				out:     cmd.OutOrStdout(),
				log:     logger.Sugar(),
			}
			return r.run(days)
		},
	}
	f := cmd.PersistentFlags()
	f.IntVar(&opts.day, "day", -1, "day to run")
	f.StringVar(&opts.part, "part", "", "part to run")
	f.BoolVar(&opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.debug, "debug", false, "debug mode")
	f.StringVar(&opts.inputDir, "input-dir", ".", "directory holding <year>/<day>.input files")
	return cmd
}

// Run runs the puzzles of year on slvr, exiting non-zero on failure. See
// Command.
func Run(year int, sources fs.FS, slvr any) {
	if err := Command(year, sources, slvr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var session = sync.OnceValues(func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(home, "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("reading session key: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
})

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without prefix. It panics if s does not start with
// prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		panic(fmt.Sprintf("bad prefix: %q", s))
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel calls f on every element of in concurrently and returns the
// results in order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
