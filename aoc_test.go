package aoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=mxmxvkd,sqjhc `,
			want: sample{
				want: "mxmxvkd,sqjhc",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample = %+v, want %+v", got, tt.want)
		}
	}

	if _, ok := parseSample("// just a comment"); ok {
		t.Error("parseSample found a sample in a plain comment")
	}
}

const fakeSource = `package main

/*
want=6

1
2
3
*/
func (s fakeSolver) D1p1() any { return 0 }

// want=6
func (s fakeSolver) D1p2() any { return 0 }

// Helper has no sample.
func helper() {}

/*
want=3

a
b
c
*/
func (s fakeSolver) D2p1() any { return 0 }
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples("fake.go", []byte(fakeSource))
	require.NoError(t, err)
	assert.Equal(t, map[string]sample{
		"D1p1": {input: "1\n2\n3\n", want: "6"},
		"D1p2": {input: "1\n2\n3\n", want: "6"},
		"D2p1": {input: "a\nb\nc\n", want: "3"},
	}, got)

	_, err = extractSamples("bad.go", []byte("package main\nfunc {"))
	assert.Error(t, err)
}

func TestExtractAllSamples(t *testing.T) {
	fsys := fstest.MapFS{
		"fake.go":      {Data: []byte(fakeSource)},
		"fake_test.go": {Data: []byte("not go")},
		"answers.yaml": {Data: []byte("1:\n  \"1\": \"6\"\n")},
	}
	got, err := extractAllSamples(fsys)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	fsys["dup.go"] = &fstest.MapFile{Data: []byte(fakeSource)}
	_, err = extractAllSamples(fsys)
	assert.ErrorContains(t, err, "duplicate sample")
}

type fakeSolver struct {
	*Puzzle
}

func (s fakeSolver) D1p1() any {
	return Sum(Ints(s.Lines()...)...)
}

func (s fakeSolver) D1p2() any {
	return Product(Ints(s.Lines()...)...)
}

func (s fakeSolver) D2p1() any {
	return len(s.Lines())
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&fakeSolver{})
	require.NoError(t, err)
	assert.Equal(t, map[int]day{
		1: {day: 1, parts: []partSolver{{Part: "1", Name: "D1p1"}, {Part: "2", Name: "D1p2"}}},
		2: {day: 2, parts: []partSolver{{Part: "1", Name: "D2p1"}}},
	}, days)

	_, err = extractMethods(fakeSolver{})
	assert.Error(t, err)
}

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1() int { return 0 }

func TestExtractMethodsSignature(t *testing.T) {
	_, err := extractMethods(&badSolver{})
	assert.ErrorContains(t, err, "want func() any")
}

func runCommand(t *testing.T, fsys fstest.MapFS, slvr any, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := Command(2020, fsys, slvr)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandSample(t *testing.T) {
	fsys := fstest.MapFS{"fake.go": {Data: []byte(fakeSource)}}
	out, err := runCommand(t, fsys, &fakeSolver{}, "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Running day 1")
	assert.Contains(t, out, "part 1 sample: 6 ✅")
	assert.Contains(t, out, "part 2 sample: 6 ✅")
	assert.Contains(t, out, "Running day 2")

	out, err = runCommand(t, fsys, &fakeSolver{}, "--sample", "--day", "1", "--part", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "part 1")
	assert.NotContains(t, out, "Running day 2")

	_, err = runCommand(t, fsys, &fakeSolver{}, "--sample", "--day", "3")
	assert.ErrorContains(t, err, "no day 3")
}

func TestCommandSampleMismatch(t *testing.T) {
	src := []byte(`package main

// want=7
//
// This sample has no input, so it uses the empty string.
func (s fakeSolver) D2p1() any { return 0 }
`)
	fsys := fstest.MapFS{"fake.go": {Data: src}}
	out, err := runCommand(t, fsys, &fakeSolver{}, "--sample", "--day", "2")
	assert.True(t, errors.Is(err, ErrSampleMismatch), "got %v", err)
	assert.Contains(t, out, "❌")
}

func TestCommandInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2020"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2020", "1.input"), []byte("2\n3\n4\n"), 0600))

	fsys := fstest.MapFS{
		"fake.go":      {Data: []byte(fakeSource)},
		"answers.yaml": {Data: []byte("1:\n  \"1\": \"9\"\n  \"2\": \"24\"\n")},
	}
	out, err := runCommand(t, fsys, &fakeSolver{}, "--day", "1", "--input-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "part 1: 9 ✅")
	assert.Contains(t, out, "part 2: 24 ✅")

	fsys["answers.yaml"] = &fstest.MapFile{Data: []byte("1:\n  \"1\": \"10\"\n")}
	out, err = runCommand(t, fsys, &fakeSolver{}, "--day", "1", "--skip-sample", "--input-dir", dir)
	assert.True(t, errors.Is(err, ErrAnswerMismatch), "got %v", err)
	assert.Contains(t, out, "want 10")
}

func TestAnswers(t *testing.T) {
	a, err := ParseAnswers([]byte("21:\n  \"2\": \"mxmxvkd,sqjhc,fvjkl\"\n25:\n  \"1\": \"14897079\"\n"))
	require.NoError(t, err)
	v, ok := a.Lookup(21, "2")
	assert.True(t, ok)
	assert.Equal(t, "mxmxvkd,sqjhc,fvjkl", v)
	_, ok = a.Lookup(21, "1")
	assert.False(t, ok)
	_, ok = a.Lookup(3, "1")
	assert.False(t, ok)

	_, err = ParseAnswers([]byte("1: [unterminated"))
	assert.Error(t, err)

	a, err = LoadAnswers(fstest.MapFS{}, "answers.yaml")
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestParallel(t *testing.T) {
	var calls atomic.Int32
	got := Parallel([]int{1, 2, 3, 4}, func(v int) int {
		calls.Add(1)
		return v * v
	})
	assert.Equal(t, []int{1, 4, 9, 16}, got)
	assert.Equal(t, int32(4), calls.Load())

	sum := ParallelMapFold([]string{"1", "22", "333"}, func(s string) int {
		return len(s)
	}, func(acc, n int) int {
		return acc + n
	}, 0)
	assert.Equal(t, 6, sum)
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
}

func TestTrimPrefix(t *testing.T) {
	assert.Equal(t, "2311:", TrimPrefix("Tile 2311:", "Tile "))
	assert.Panics(t, func() { TrimPrefix("x", "Tile ") })
}

func TestPuzzleLines(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Part: "1", Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {input: "a b\n\nc\n", want: "x"}},
	}
	assert.Equal(t, []string{"a b", "", "c"}, p.Lines())
	assert.Equal(t, []string{"a b", "c"}, p.Paragraphs())
	var ys []int
	p.ForLinesY(func(y int, _ string) { ys = append(ys, y) })
	assert.Equal(t, []int{0, 1, 2}, ys)
	assert.NotNil(t, p.Logger())
}
