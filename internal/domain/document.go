package domain

// Task is a single bar to render: a numeric start and end in the same
// (arbitrary) unit, plus a display label. End >= Start is expected but not
// enforced.
type Task struct {
	Start float64
	End   float64
	Label string
}

// Section is a named, ordered group of tasks. Task order is file order and
// determines vertical stacking. Section names need not be unique; duplicates
// are distinct sections.
type Section struct {
	Name  string
	Tasks []Task
}

// Document is the full ordered parse result of one input file. It is
// transient: rebuilt from scratch on every render, never cached or diffed.
type Document struct {
	Sections []Section
}

// TaskCount returns the total number of tasks across all sections, which is
// also the number of chart rows.
func (d Document) TaskCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Tasks)
	}
	return n
}

// Span returns the minimum start and maximum end over all tasks. ok is false
// when the document contains no tasks.
func (d Document) Span() (min, max float64, ok bool) {
	for _, s := range d.Sections {
		for _, t := range s.Tasks {
			if !ok {
				min, max = t.Start, t.End
				ok = true
				continue
			}
			if t.Start < min {
				min = t.Start
			}
			if t.End > max {
				max = t.End
			}
		}
	}
	return min, max, ok
}
