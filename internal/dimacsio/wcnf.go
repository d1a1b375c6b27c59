package dimacsio

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/wpms-io/wpms-core/wcnf"
)

// LoadWCNF parses a weighted partial MaxSAT file (the "p wcnf nbvar
// nbclauses top" header, one "<weight> lit ... 0" line per clause) and
// adds every clause to store via AddDimacsClause. The scanning follows
// the manual line-dispatch style the upstream CLI uses for plain DIMACS:
// a switch on the line's first byte, one parse function per line kind.
func LoadWCNF(filename string, gzipped bool, store *wcnf.Store) error {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<24)

	sawHeader := false
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case '%':
			return nil
		case 'p':
			nvars, nclauses, top, err := parseWCNFHeader(line)
			if err != nil {
				return &wcnf.ParseError{Line: lineNo, Msg: err.Error()}
			}
			store.SetDimacsParams(nvars, nclauses, top)
			sawHeader = true
		default:
			if !sawHeader {
				return &wcnf.ParseError{Line: lineNo, Msg: "clause before header"}
			}
			w, lits, err := parseWCNFClause(line)
			if err != nil {
				return &wcnf.ParseError{Line: lineNo, Msg: err.Error()}
			}
			if err := store.AddDimacsClause(lits, w); err != nil {
				return &wcnf.ParseError{Line: lineNo, Msg: err.Error()}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dimacsio: reading %q: %w", filename, err)
	}
	return nil
}

// parseWCNFHeader parses "p wcnf nbvar nbclauses [top]". When top is
// omitted, every clause is treated as soft by using a top of 1e300, far
// above any weight expected to appear.
func parseWCNFHeader(line string) (nvars, nclauses int, top wcnf.Weight, err error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[1] != "wcnf" {
		return 0, 0, 0, fmt.Errorf("expected %q header, got %q", "p wcnf", line)
	}
	nvars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad nbvar: %w", err)
	}
	nclauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad nbclauses: %w", err)
	}
	if len(fields) >= 5 {
		t, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad top: %w", err)
		}
		top = wcnf.Weight(t)
	} else {
		top = wcnf.Weight(1e300)
	}
	return nvars, nclauses, top, nil
}

// parseWCNFClause parses "<weight> lit1 lit2 ... 0".
func parseWCNFClause(line string) (wcnf.Weight, []wcnf.Lit, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("clause line too short: %q", line)
	}
	w, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, nil, fmt.Errorf("bad weight: %w", err)
	}

	body := fields[1:]
	if last := body[len(body)-1]; last == "0" {
		body = body[:len(body)-1]
	}
	tmp := make([]int, len(body))
	for i, f := range body {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, nil, fmt.Errorf("bad literal %q: %w", f, err)
		}
		tmp[i] = v
	}
	return wcnf.Weight(w), toLits(tmp), nil
}
