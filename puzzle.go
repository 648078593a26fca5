package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Puzzle is the state of the day and part being solved. Solvers embed a
// *Puzzle, which the runner sets before calling each part.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver   partSolver
	samples  map[string]sample
	inputDir string
	input    []byte
	log      *zap.SugaredLogger
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(p.inputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

func (p *Puzzle) loadInput() error {
	if p.input != nil {
		return nil
	}
	b, err := fileOrFetch(p.log, p.inputPath(), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
	if err != nil {
		return fmt.Errorf("day %d input: %w", p.day.day, err)
	}
	p.input = b
	return nil
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	MustDo(p.loadInput())
	return p.input
}

// InputString returns the input with trailing newlines removed.
func (p *Puzzle) InputString() string {
	return strings.TrimRight(string(p.Input()), "\n")
}

// Lines returns the lines of the input.
func (p *Puzzle) Lines() []string {
	return strings.Split(p.InputString(), "\n")
}

// Paragraphs returns the blank-line separated blocks of the input.
func (p *Puzzle) Paragraphs() []string {
	return strings.Split(p.InputString(), "\n\n")
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Logger returns the logger for the current day.
func (p *Puzzle) Logger() *zap.SugaredLogger {
	if p.log == nil {
		return zap.NewNop().Sugar()
	}
	return p.log
}

func (p *Puzzle) Debug(v ...any) {
	p.Logger().Debug(v...)
}

// Debugf logs only while solving the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.Logger().Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

func request(method, url string, body io.Reader) (*http.Request, error) {
	key, err := session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: key})
	return req, nil
}

func fetch(url string) ([]byte, error) {
	req, err := request("GET", url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

func fileOrFetch(log *zap.SugaredLogger, filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}

	log.Infow("fetching input", "url", url, "file", filename)
	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}
