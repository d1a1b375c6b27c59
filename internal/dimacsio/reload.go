package dimacsio

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/wpms-io/wpms-core/wcnf"
)

// NewReloader returns a callback suitable for wcnf.Store.SetOriginalSource:
// each call re-parses filename from scratch into an untouched
// wcnf.RawFormula, independent of whatever rewriting Simplify has done to
// the store's own arenas. Re-parsing rather than caching mirrors the core
// engine's own approach of keeping a pristine copy around for the final
// check_model call once the working arenas may have been released.
func NewReloader(filename string, gzipped bool) func() (*wcnf.RawFormula, error) {
	return func() (*wcnf.RawFormula, error) {
		return parseWCNFRaw(filename, gzipped)
	}
}

func parseWCNFRaw(filename string, gzipped bool) (*wcnf.RawFormula, error) {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	raw := &wcnf.RawFormula{}
	var top wcnf.Weight = wcnf.Weight(1e300)
	sawHeader := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<24)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case '%':
			return raw, nil
		case 'p':
			_, _, t, err := parseWCNFHeader(line)
			if err != nil {
				return nil, &wcnf.ParseError{Line: lineNo, Msg: err.Error()}
			}
			top = t
			sawHeader = true
		default:
			if !sawHeader {
				return nil, &wcnf.ParseError{Line: lineNo, Msg: "clause before header"}
			}
			w, lits, err := parseWCNFClause(line)
			if err != nil {
				return nil, &wcnf.ParseError{Line: lineNo, Msg: err.Error()}
			}
			if w >= top {
				raw.Hard = append(raw.Hard, lits)
			} else {
				raw.Soft = append(raw.Soft, wcnf.SoftLit{Lits: lits, Weight: w})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacsio: reading %q: %w", filename, err)
	}
	return raw, nil
}
