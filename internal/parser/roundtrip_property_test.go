package parser

import (
	"bytes"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/alexanderramin/gantt/internal/domain"
)

// genDocument draws a Document whose names and labels survive the trimming
// the parser applies: no surrounding whitespace, no embedded newlines.
// Labels may contain commas.
func genDocument(t *rapid.T) domain.Document {
	nSections := rapid.IntRange(1, 5).Draw(t, "sections")
	doc := domain.Document{}
	for i := 0; i < nSections; i++ {
		s := domain.Section{
			Name: rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,18}[A-Za-z0-9]`).Draw(t, "name"),
		}
		nTasks := rapid.IntRange(0, 4).Draw(t, "tasks")
		for j := 0; j < nTasks; j++ {
			s.Tasks = append(s.Tasks, domain.Task{
				Start: rapid.Float64Range(-1e6, 1e6).Draw(t, "start"),
				End:   rapid.Float64Range(-1e6, 1e6).Draw(t, "end"),
				Label: rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9 ,.]{0,24}[a-zA-Z0-9]`).Draw(t, "label"),
			})
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

// TestRoundTrip_EncodeThenParse verifies that for any document, serializing
// it and parsing the result reproduces the same section names, order, and
// per-task (start, end, label) tuples exactly.
func TestRoundTrip_EncodeThenParse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := genDocument(t)

		var buf bytes.Buffer
		if err := Encode(&buf, doc); err != nil {
			t.Fatalf("encoding should not fail: %v", err)
		}

		got, err := Parse(&buf)
		if err != nil {
			t.Fatalf("parsing encoded document should not fail: %v\ninput:\n%s", err, buf.String())
		}
		if !reflect.DeepEqual(got, doc) {
			t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v\ninput:\n%s", doc, got, buf.String())
		}
	})
}
