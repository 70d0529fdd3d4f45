// core/maf/loader.go
package maf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MissingColumnError reports a required column absent from the header. The
// column name is surfaced verbatim so the fix (a one-line rename upstream)
// is obvious from the message alone.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q not found", e.Path, e.Column)
}

// Load reads a MAF from path. Lines starting with '#' (version pragmas and
// comments) and blank lines are skipped; the first remaining line is the
// header. Rows wider than the header are rejected, ragged trailing fields
// are tolerated as empty.
func Load(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

// Read parses MAF content from r; path is used for error context only.
func Read(r io.Reader, path string) (*Table, error) {
	sc := bufio.NewScanner(r)
	// MAF rows carry free-text annotation columns and can get long.
	sc.Buffer(make([]byte, 0, 64<<10), 8<<20)

	t := &Table{Path: path}
	idx := map[string]int{}
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if t.Columns == nil {
			t.Columns = fields
			for i, c := range fields {
				if _, dup := idx[c]; !dup {
					idx[c] = i
				}
			}
			for _, c := range RequiredColumns {
				if _, ok := idx[c]; !ok {
					return nil, &MissingColumnError{Path: path, Column: c}
				}
			}
			continue
		}
		if len(fields) > len(t.Columns) {
			return nil, fmt.Errorf("%s:%d row has %d fields, header has %d", path, ln, len(fields), len(t.Columns))
		}
		at := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(fields) {
				return ""
			}
			return fields[i]
		}
		t.Records = append(t.Records, Record{
			Gene:           at(ColGene),
			Classification: at(ColClassification),
			Sample:         at(ColSample),
			VariantType:    at(ColVariantType),
			RefAllele:      at(ColRefAllele),
			TumorAllele:    at(ColTumorAllele),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Columns == nil {
		return nil, fmt.Errorf("%s: no header line", path)
	}
	return t, nil
}
