// core/clinical/loader.go
package clinical

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a tab-separated clinical table. keyColumn selects the patient
// identifier column; when empty, the first KeyCandidates member present in
// the header is used. A named-but-absent key column is a *MissingColumnError.
func Load(path, keyColumn string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path, keyColumn)
}

// Read parses clinical content from r; path is used for error context only.
func Read(r io.Reader, path, keyColumn string) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 8<<20)

	t := &Table{Path: path}
	keyIdx := -1
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
			if keyColumn != "" {
				keyIdx = indexOf(fields, keyColumn)
				if keyIdx < 0 {
					return nil, &MissingColumnError{Path: path, Column: keyColumn}
				}
				t.KeyColumn = keyColumn
			} else {
				for _, cand := range KeyCandidates {
					if i := indexOf(fields, cand); i >= 0 {
						keyIdx, t.KeyColumn = i, cand
						break
					}
				}
				if keyIdx < 0 {
					return nil, &MissingColumnError{Path: path, Column: strings.Join(KeyCandidates, "|")}
				}
			}
			continue
		}
		if len(fields) > len(t.Columns) {
			return nil, fmt.Errorf("%s:%d row has %d fields, header has %d", path, ln, len(fields), len(t.Columns))
		}
		row := Row{Fields: make(map[string]string, len(t.Columns))}
		for i, c := range t.Columns {
			if i < len(fields) {
				row.Fields[c] = fields[i]
			} else {
				row.Fields[c] = ""
			}
		}
		row.Key = row.Fields[t.KeyColumn]
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Columns == nil {
		return nil, fmt.Errorf("%s: no header line", path)
	}
	return t, nil
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}
