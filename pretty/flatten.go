package pretty

import "fmt"

// flatten returns the single-line alternative of d: the document d renders to
// when every line break is resolved to "no break".  It is only called by
// Group; the resolver never flattens anything itself.
func flatten(d Doc) Doc {
	switch t := d.(type) {
	case nilDoc, text:
		return d
	case concat:
		return Concat(flatten(t.a), flatten(t.b))
	case nest:
		// the nesting has no visible effect without breaks but nested column
		// and nesting callbacks still need to see it
		return Nest(t.n, flatten(t.d))
	case union:
		// the flat side is already flat; a group inside a flattened group is
		// always flat
		return t.flat
	case line:
		if t.flat == "" {
			return Nil
		}

		return Text(t.flat)
	case column:
		return column{func(k int) Doc { return flatten(t.f(k)) }}
	case nesting:
		return nesting{func(i int) Doc { return flatten(t.f(i)) }}
	case nil:
		return Nil
	default:
		panic(fmt.Errorf("unknown document type: %T", d))
	}
}
