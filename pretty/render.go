package pretty

import (
	"bufio"
	"io"
	"strings"
)

// DefaultWidth is the page width used when none is configured.
const DefaultWidth = 80

// Options controls how a document is rendered.
type Options struct {
	// Width is the page width in columns
	Width int

	// UseTabs fills indentation with as many tabs as fit before padding the
	// rest with spaces.  TabWidth is the number of columns a tab counts for.
	UseTabs  bool
	TabWidth int

	// Annotate, if set, is applied to every text element that carries a tag.
	// Its result is written in place of the text; it does not affect layout.
	Annotate func(tag interface{}, s string) string
}

// DefaultOptions returns the options used by Pretty for a given width.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, TabWidth: 4}
}

// Pretty lays out d for page width w and returns the result.
func Pretty(w int, d Doc) string {
	opts := DefaultOptions()
	opts.Width = w
	return Render(d, opts)
}

// Render lays out d according to opts and returns the result.
func Render(d Doc, opts Options) string {
	var sb strings.Builder

	// writing to a strings.Builder never fails
	_ = layout(&sb, Best(opts.Width, 0, d), opts)

	return sb.String()
}

// Fprint lays out d according to opts and writes the result to w.
func Fprint(w io.Writer, d Doc, opts Options) error {
	bw := bufio.NewWriter(w)
	if err := layout(bw, Best(opts.Width, 0, d), opts); err != nil {
		return err
	}

	return bw.Flush()
}

// Layout renders an already resolved Normal Form to w.
func Layout(w io.Writer, s *Stream, opts Options) error {
	bw := bufio.NewWriter(w)
	if err := layout(bw, s, opts); err != nil {
		return err
	}

	return bw.Flush()
}

// textWriter is satisfied by both strings.Builder and bufio.Writer.
type textWriter interface {
	io.ByteWriter
	io.StringWriter
}

func layout(tw textWriter, s *Stream, opts Options) error {
	for {
		e, ok := s.Next()
		if !ok {
			return nil
		}

		switch e.Kind {
		case TextElem:
			str := e.Text
			if opts.Annotate != nil && e.Tag != nil {
				str = opts.Annotate(e.Tag, str)
			}

			if _, err := tw.WriteString(str); err != nil {
				return err
			}
		case LineElem:
			if err := tw.WriteByte('\n'); err != nil {
				return err
			}

			if err := writeIndent(tw, e.Indent, opts); err != nil {
				return err
			}

			if _, err := tw.WriteString(e.Sep); err != nil {
				return err
			}
		}
	}
}

// writeIndent writes i columns of indentation: as many tabs as fit first
// when tabs are enabled, then spaces for the rest.
func writeIndent(tw textWriter, i int, opts Options) error {
	c := 0
	if opts.UseTabs && opts.TabWidth > 0 {
		for ; c+opts.TabWidth <= i; c += opts.TabWidth {
			if err := tw.WriteByte('\t'); err != nil {
				return err
			}
		}
	}

	if c < i {
		_, err := tw.WriteString(spaces(i - c))
		return err
	}

	return nil
}
