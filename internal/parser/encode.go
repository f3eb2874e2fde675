package parser

import (
	"bufio"
	"io"
	"strconv"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Encode writes doc in the sectioned task format, the inverse of Parse.
// Numbers are written with the shortest representation that parses back to
// the same float64, so Parse(Encode(doc)) reproduces doc exactly.
func Encode(w io.Writer, doc domain.Document) error {
	bw := bufio.NewWriter(w)
	for i, s := range doc.Sections {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteByte('*')
		bw.WriteString(s.Name)
		bw.WriteByte('\n')
		for _, t := range s.Tasks {
			bw.WriteString(strconv.FormatFloat(t.Start, 'g', -1, 64))
			bw.WriteString(", ")
			bw.WriteString(strconv.FormatFloat(t.End, 'g', -1, 64))
			bw.WriteString(", ")
			bw.WriteString(t.Label)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
