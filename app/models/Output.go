package models

// Output is what a command hands back to the transport: text for the
// chat and a warning for the logs.
type Output struct {
	Out     string
	Warning string
}

// Merge joins two outputs, separating non-empty parts with a newline.
func (o Output) Merge(rhs Output) Output {
	return Output{
		Out:     joinLines(o.Out, rhs.Out),
		Warning: joinLines(o.Warning, rhs.Warning),
	}
}

// MergeOut appends a line to the user-facing text.
func (o Output) MergeOut(s string) Output {
	return o.Merge(Output{Out: s})
}

// MergeWarning appends a line to the warning text.
func (o Output) MergeWarning(s string) Output {
	return o.Merge(Output{Warning: s})
}

func joinLines(a, b string) string {
	switch {
	case b == "":
		return a
	case a == "":
		return b
	default:
		return a + " \n" + b
	}
}
