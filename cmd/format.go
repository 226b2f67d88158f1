package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"docfmt/common"
	"docfmt/logging"
	"docfmt/pretty"
	"docfmt/sexpr"

	"golang.org/x/sync/errgroup"
)

// formatOptions are the settings of a single `fmt` run
type formatOptions struct {
	render pretty.Options
	write  bool
	check  bool
	dump   bool

	// annotate styles the printed output; it is never used for files which
	// are written back
	annotate func(tag interface{}, s string) string
}

// validate rejects combinations of flags which contradict each other
func (fo formatOptions) validate() error {
	switch {
	case fo.dump && (fo.write || fo.check):
		return errors.New("`--dump` cannot be combined with `--write` or `--check`")
	case fo.check && fo.write:
		return errors.New("`--check` cannot be combined with `--write`")
	}

	return nil
}

// formatResult is the outcome of formatting a single file
type formatResult struct {
	path string
	src  string

	// out is the formatted text or the debug form of the document if dumping
	out string

	// display is what is printed for the file: out, possibly styled
	display string

	// ok is false if the file could not be formatted
	ok bool
}

// collectFiles returns path if it is a file or every source file beneath it
// (in lexical order) if it is a directory
func collectFiles(path string) ([]string, error) {
	finfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !finfo.IsDir() {
		return []string{path}, nil
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && common.IsSourceFile(p) {
			paths = append(paths, p)
		}

		return nil
	})

	return paths, err
}

// buildDoc parses the source of a file into a document according to the
// file's extension: S-expression files are laid out as Lisp, document files
// are compiled from the document language
func buildDoc(path, src string) (pretty.Doc, error) {
	forms, err := sexpr.Parse(src)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case common.SExpExtension:
		return sexpr.FormatAll(forms), nil
	case common.DocExtension:
		return sexpr.CompileAll(forms)
	default:
		return nil, fmt.Errorf("unsupported file extension `%s`", filepath.Ext(path))
	}
}

// renderDoc renders d terminated by a newline (unless it renders to nothing)
func renderDoc(d pretty.Doc, opts pretty.Options) string {
	out := pretty.Render(d, opts)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return out
}

// formatFiles formats every file concurrently.  Errors specific to a file are
// logged and do not stop the others; the results are in the order of paths.
func formatFiles(ctx context.Context, paths []string, fo formatOptions) ([]formatResult, error) {
	results := make([]formatResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			buff, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			res := formatResult{path: path, src: string(buff)}

			d, err := buildDoc(path, res.src)
			if err != nil {
				logging.LogFormatError(path, err)
				results[i] = res
				return nil
			}
			res.ok = true

			if fo.dump {
				res.out = d.String() + "\n"
				res.display = res.out
				results[i] = res
				return nil
			}

			res.out = renderDoc(d, fo.render)
			res.display = res.out
			if fo.annotate != nil {
				styled := fo.render
				styled.Annotate = fo.annotate
				res.display = renderDoc(d, styled)
			}

			for _, n := range overflowingLines(res.out, fo.render) {
				logging.LogFormatWarning(path, nil, fmt.Sprintf("line %d of the output is wider than %d columns", n, fo.render.Width))
			}

			if fo.write && res.out != res.src {
				if err := os.WriteFile(path, []byte(res.out), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// overflowingLines returns the (1-based) numbers of the lines of out which are
// wider than the page.  Only a text which is too long on its own can cause
// this.
func overflowingLines(out string, opts pretty.Options) []int {
	var overflows []int

	for n, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if lineWidth(line, opts.TabWidth) > opts.Width {
			overflows = append(overflows, n+1)
		}
	}

	return overflows
}

// lineWidth is the display width of line with its leading tabs expanded
func lineWidth(line string, tabWidth int) int {
	trimmed := strings.TrimLeft(line, "\t")
	return (len(line)-len(trimmed))*tabWidth + pretty.TextWidth(trimmed)
}
