// Package corpora runs table-driven tests whose table lives in the file system:
// each input file is a test case, expected outputs are stored next to it.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root is the test data directory, relative to the file calling Run.
	Root string

	// Refresh is the name of environment variable holding a glob of test cases
	// whose output files should be rewritten instead of compared.
	Refresh string

	// Extension of input files, without a dot.
	Extension string

	// Outputs lists expected outputs. For input "foo.calc" and output extension "tree"
	// the expected output is stored in "foo.calc.tree", a missing file means empty output.
	Outputs []Output

	// Test runs one test case and returns results in Outputs order.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of a test case.
type Output struct {
	Extension string

	// Compare returns empty string if got matches want, a diff otherwise.
	// Exact comparison is used if nil.
	Compare func(got, want string) string
}

// Run runs the corpus tests as subtests of t.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir()
	root := filepath.Join(testDir, c.Root)

	var cases []string
	e := filepath.WalkDir(root, func(p string, d fs.DirEntry, e error) error {
		if e == nil && !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return e
	})
	if e != nil {
		t.Fatalf("corpora: cannot read %q: %s", root, e)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no .%s files found in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs matching %q", refresh)
		t.Fail()
	}

	for _, p := range cases {
		name, _ := filepath.Rel(testDir, p)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, e := os.ReadFile(p)
			if e != nil {
				t.Fatalf("corpora: cannot read %q: %s", p, e)
			}

			results := c.Test(t, name, string(input))
			rewrite := refresh != "" && matches(refresh, name)
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(p, ".", output.Extension)
				if rewrite {
					writeOutput(t, outPath, results[i])
				} else {
					compareOutput(t, outPath, results[i], output.Compare)
				}
			}
		})
	}
}

func matches(pattern, name string) bool {
	res, _ := doublestar.Match(pattern, name)
	return res
}

func writeOutput(t *testing.T, path, content string) {
	var e error
	if content == "" {
		e = os.Remove(path)
		if errors.Is(e, os.ErrNotExist) {
			e = nil
		}
	} else {
		e = os.WriteFile(path, []byte(content), 0644)
	}
	if e != nil {
		t.Errorf("corpora: cannot update %q: %s", path, e)
	}
}

func compareOutput(t *testing.T, path, got string, compare func(got, want string) string) {
	want, e := os.ReadFile(path)
	if e != nil && !errors.Is(e, os.ErrNotExist) {
		t.Errorf("corpora: cannot read %q: %s", path, e)
		return
	}

	if compare == nil {
		compare = Diff
	}
	if diff := compare(got, string(want)); diff != "" {
		t.Errorf("output mismatch for %q:\n%s", path, diff)
	}
}

// Diff returns unified diff of want and got, or empty string if they are equal.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, e := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if e != nil {
		return e.Error()
	}
	return diff
}

func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: cannot determine caller directory")
	}
	return filepath.Dir(file)
}
