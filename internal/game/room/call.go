package room

import (
	"errors"
	"fmt"
	"strconv"
)

// Directive parse errors.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrMalformedCall      = errors.New("malformed call")
)

// scanner walks directive text one byte at a time. A NUL terminator is
// appended so one-character lookahead never runs past the buffer; object
// names never contain NUL.
type scanner struct {
	src []byte
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{src: append([]byte(s), 0)}
}

func (s *scanner) head() byte {
	return s.src[s.pos]
}

// accept consumes the next byte if it equals c. Never consumes the
// terminator.
func (s *scanner) accept(c byte) bool {
	if s.head() == 0 || s.head() != c {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) expect(c byte) error {
	if !s.accept(c) {
		return fmt.Errorf("%w: expected '%c'", ErrMalformedCall, c)
	}
	return nil
}

// parseString reads verbatim up to the closing quote. No escape sequences.
func (s *scanner) parseString() (string, error) {
	start := s.pos
	for !s.accept('"') {
		if s.head() == 0 {
			return "", ErrUnterminatedString
		}
		s.pos++
	}
	return string(s.src[start : s.pos-1]), nil
}

// parseIdentifier reads a possibly empty run of [A-Za-z0-9_-]. Cannot fail.
func (s *scanner) parseIdentifier() string {
	start := s.pos
	for isIdentByte(s.head()) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func (s *scanner) parseArgument() (string, error) {
	for s.accept(' ') {
	}
	if s.accept('"') {
		return s.parseString()
	}
	return s.parseIdentifier(), nil
}

// parseCall parses `identifier [ '(' arg { ',' arg } ')' ]` and returns the
// identifier followed by the arguments in order.
func parseCall(content string) ([]string, error) {
	s := newScanner(content)

	words := []string{s.parseIdentifier()}

	if s.accept('(') {
		first := true
		for !s.accept(')') {
			if !first {
				if err := s.expect(','); err != nil {
					return nil, err
				}
			}
			arg, err := s.parseArgument()
			if err != nil {
				return nil, err
			}
			words = append(words, arg)
			first = false
		}
	}

	return words, nil
}

// parseFormula parses a spawn directive into its type name and a config
// mapping of positional keys "0".."n-1" to argument values.
func parseFormula(formula string) (string, map[string]string, error) {
	words, err := parseCall(formula)
	if err != nil {
		return "", nil, err
	}

	config := make(map[string]string, len(words)-1)
	for i, arg := range words[1:] {
		config[strconv.Itoa(i)] = arg
	}

	return words[0], config, nil
}
