package pretty

// fits reports whether the first line of the candidate layout produced by src
// stays within w columns.  The candidate is consumed only as far as needed: up
// to its first line break, its end, or the point where the budget runs out.
// A candidate that exactly fills the budget fits.
func fits(w int, src elemSource) bool {
	for {
		if w < 0 {
			return false
		}

		e, ok := src.Next()
		if !ok {
			return true
		}

		switch e.Kind {
		case LineElem:
			// a real break ends the visual line whatever follows it
			return true
		case TextElem:
			w -= textWidth(e.Text)
		}
	}
}
