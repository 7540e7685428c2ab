// Package codec converts terms to and from their line-oriented text form:
// one term per line, tokens separated by a single space.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/termgen/pkg/domain"
)

// Serialize joins the tokens of term with single spaces.
func Serialize(term domain.Term) string {
	return strings.Join(term, " ")
}

// Tokenize splits a serialized line back into its tokens.
func Tokenize(line string) domain.Term {
	return domain.Term(strings.Fields(line))
}

// Write emits every term followed by a newline, in order.
// Zero terms write nothing.
func Write(w io.Writer, terms []domain.Term) error {
	bw := bufio.NewWriter(w)
	for i, term := range terms {
		if _, err := bw.WriteString(Serialize(term)); err != nil {
			return fmt.Errorf("write term %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write term %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// Read returns one term per non-blank line of r.
func Read(r io.Reader) ([]domain.Term, error) {
	var terms []domain.Term
	err := Scan(r, func(term domain.Term) error {
		terms = append(terms, term)
		return nil
	})
	return terms, err
}

// Scan calls fn for every non-blank line of r, stopping at the first error.
func Scan(r io.Reader, fn func(domain.Term) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		term := Tokenize(scanner.Text())
		if len(term) == 0 {
			continue
		}
		if err := fn(term); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan terms: %w", err)
	}
	return nil
}
