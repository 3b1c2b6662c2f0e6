/*
rdp is a console utility parsing files with a grammar described in YAML.
Usage is

	rdp [-t] [-j <n>] -g <grammar> <file>...

-g <grammar> defines grammar definition file parsable by langdef.Parse();

-t flag instructs rdp to print token stream (line:col, category, literal) before syntax tree;

-j <n> defines the maximum number of files parsed concurrently, default is the number of CPUs;

<file> defines source file name, several files may be given.

Syntax trees are printed in S-expression form, in the order of file names.
Exit status is 1 if any file cannot be parsed, 2 on wrong usage or grammar.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ava12/rdp/langdef"
	"github.com/ava12/rdp/lexer"
	"github.com/ava12/rdp/parser"
	"github.com/ava12/rdp/source"
	"github.com/ava12/rdp/tree"
)

type config struct {
	grammarFile string
	showTokens  bool
	jobs        int
	files       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("rdp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage is  rdp [-t] [-j <n>] -g <grammar> <file>...")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "  <file>")
		fmt.Fprintln(fs.Output(), "\tsource file name")
	}

	c := &config{}
	fs.StringVar(&c.grammarFile, "g", "", "grammar definition file name")
	fs.BoolVar(&c.showTokens, "t", false, "print token stream")
	fs.IntVar(&c.jobs, "j", runtime.NumCPU(), "maximum number of files parsed concurrently")
	e := fs.Parse(args)
	if e != nil {
		return nil, e
	}

	c.files = fs.Args()
	if c.grammarFile == "" || len(c.files) == 0 {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	if c.jobs < 1 {
		c.jobs = 1
	}
	return c, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	c, e := parseFlags(args, stderr)
	if e != nil {
		return 2
	}

	g, e := loadGrammar(c.grammarFile)
	if e != nil {
		fmt.Fprintln(stderr, e)
		return 2
	}
	l, e := g.Lexer()
	if e != nil {
		fmt.Fprintln(stderr, e)
		return 2
	}
	p := g.Parser()

	outputs := make([]string, len(c.files))
	errs := make([]error, len(c.files))
	var eg errgroup.Group
	eg.SetLimit(c.jobs)
	for i, name := range c.files {
		eg.Go(func() error {
			outputs[i], errs[i] = processFile(name, l, p, g.Document(), c.showTokens)
			return nil
		})
	}
	_ = eg.Wait()

	status := 0
	for i, name := range c.files {
		if errs[i] != nil {
			fmt.Fprintf(stderr, "%s: %s\n", name, errs[i])
			status = 1
			continue
		}

		if len(c.files) > 1 {
			fmt.Fprintf(stdout, "== %s ==\n", name)
		}
		fmt.Fprint(stdout, outputs[i])
	}
	return status
}

func loadGrammar(name string) (*langdef.Grammar, error) {
	src, e := os.ReadFile(name)
	if e != nil {
		return nil, e
	}

	return langdef.Parse(name, src)
}

func processFile(
	name string,
	l *lexer.Lexer[*langdef.TokenDef],
	p *parser.Parser[*langdef.TokenDef, *langdef.RuleDef],
	root *langdef.RuleDef,
	showTokens bool,
) (string, error) {
	src, e := os.ReadFile(name)
	if e != nil {
		return "", e
	}

	tokens, e := l.Parse(string(src))
	if e != nil {
		return "", e
	}

	text := source.New(name, string(src))
	var sb strings.Builder
	if showTokens {
		writeTokens(&sb, text, tokens)
	}

	res, e := p.Parse(tokens, root)
	if e != nil {
		return "", e
	}

	sb.WriteString(tree.Format(res.Node))
	sb.WriteByte('\n')
	if len(res.Remaining) > 0 {
		fmt.Fprintf(&sb, "; %d tokens left unparsed at %s\n", len(res.Remaining), text.Pos(res.Remaining[0].Offset))
	}
	return sb.String(), nil
}

func writeTokens(w io.Writer, src *source.Source, tokens []lexer.ParsedToken[*langdef.TokenDef]) {
	for _, t := range tokens {
		line, col := src.LineCol(t.Offset)
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", line, col, t.Token.Name(), t.Literal)
	}
}
