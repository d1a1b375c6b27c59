package wcnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorFormatting(t *testing.T) {
	withLine := &ParseError{Line: 42, Msg: "bad weight"}
	assert.Equal(t, "wcnf: parse error at line 42: bad weight", withLine.Error())

	noLine := &ParseError{Msg: "bad weight"}
	assert.Equal(t, "wcnf: parse error: bad weight", noLine.Error())
}

func TestErrUnsatAndErrInvariantAreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrUnsat, ErrInvariant)
	assert.ErrorContains(t, ErrUnsat, "unsatisfiable")
}
