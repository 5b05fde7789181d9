package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ValidateFunc decides whether a parsed sequence is acceptable. Records
// failing validation are silently skipped: not counted, not stored. Callers
// needing strict behavior supply their own predicate.
type ValidateFunc func(sequence string) bool

// DefaultValidate accepts non-empty sequences made only of the uppercase
// symbols A, C, G, T and N.
func DefaultValidate(sequence string) bool {
	if len(sequence) == 0 {
		return false
	}
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return false
		}
	}
	return true
}

// Reader parses the 4-line FASTQ record format into a Store.
type Reader struct {
	// Validate is applied to every sequence line; nil means
	// DefaultValidate.
	Validate ValidateFunc
}

// NewReader returns a Reader using DefaultValidate.
func NewReader() *Reader {
	return &Reader{Validate: DefaultValidate}
}

// Parse reads repeating 4-line groups (header, sequence, separator,
// quality) from src until a header read yields no data. The separator line
// is ignored. A group cut short by EOF is a format error wrapping
// ErrTruncated. Sequence and quality lengths are not cross-checked; ragged
// records are handled downstream as position-level missing data.
func (r *Reader) Parse(src io.Reader) (*Store, error) {
	validate := r.Validate
	if validate == nil {
		validate = DefaultValidate
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	store := NewStore()
	for {
		header, ok := next()
		if !ok || header == "" {
			break
		}
		sequence, okSeq := next()
		_, okSep := next()
		qual, okQual := next()
		if !okSeq || !okSep || !okQual {
			return nil, fmt.Errorf("%w: incomplete group after %d records", ErrTruncated, store.Count())
		}
		if !validate(sequence) {
			continue
		}
		store.Add(Record{ID: header[1:], Sequence: sequence, Quality: qual})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fastq scan: %w", err)
	}
	return store, nil
}

// ParseFile opens path (gzip and "-" for stdin are handled) and parses it.
func (r *Reader) ParseFile(path string) (*Store, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open fastq: %w", err)
	}
	defer rc.Close()
	return r.Parse(rc)
}
