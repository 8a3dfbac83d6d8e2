package scenario

import (
	"bufio"
	"io"
	"strconv"

	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// TextSource reads the whitespace separated token format lazily, so a run
// that is rejected early never looks at the rest of the input.
type TextSource struct {
	scanner *bufio.Scanner
}

var _ simulation.Source = (*TextSource)(nil)

// NewTextSource wraps r.
func NewTextSource(r io.Reader) *TextSource {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &TextSource{scanner: scanner}
}

func (s *TextSource) word(field string) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", simulation.Reject(simulation.MalformedInput, "reading %s: %v", field, err)
		}
		return "", simulation.Reject(simulation.MalformedInput, "missing %s", field)
	}
	return s.scanner.Text(), nil
}

func (s *TextSource) number(field string) (int, error) {
	tok, err := s.word(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, simulation.Reject(simulation.MalformedInput, "%s: %q is not an integer", field, tok)
	}
	return n, nil
}

// BoardSize reads the board side length.
func (s *TextSource) BoardSize() (int, error) { return s.number("board size") }

// InsectCount reads the number of insects.
func (s *TextSource) InsectCount() (int, error) { return s.number("insect count") }

// FoodCount reads the number of food points.
func (s *TextSource) FoodCount() (int, error) { return s.number("food count") }

// NextInsect reads "<color> <kind> <row> <column>".
func (s *TextSource) NextInsect() (simulation.InsectRecord, error) {
	var rec simulation.InsectRecord
	var err error
	if rec.Color, err = s.word("insect color"); err != nil {
		return rec, err
	}
	if rec.Kind, err = s.word("insect kind"); err != nil {
		return rec, err
	}
	if rec.Row, err = s.number("insect row"); err != nil {
		return rec, err
	}
	if rec.Column, err = s.number("insect column"); err != nil {
		return rec, err
	}
	return rec, nil
}

// NextFood reads "<value> <row> <column>".
func (s *TextSource) NextFood() (simulation.FoodRecord, error) {
	var rec simulation.FoodRecord
	var err error
	if rec.Value, err = s.number("food value"); err != nil {
		return rec, err
	}
	if rec.Row, err = s.number("food row"); err != nil {
		return rec, err
	}
	if rec.Column, err = s.number("food column"); err != nil {
		return rec, err
	}
	return rec, nil
}
