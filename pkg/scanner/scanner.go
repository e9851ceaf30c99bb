package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner provides rune based access to a textual input, used by
// recursive descent parsers.
type Scanner interface {
	Next() rune
	Current() rune
	Peek() rune
	EOF() bool
	Position() int

	SkipBlanks() rune
	ConsumeRune(r rune) error
	// LookingAt checks whether the input continues with the given token.
	LookingAt(t string) bool
	// ConsumeToken consumes the token if the input continues with it.
	ConsumeToken(t string) bool
	// ConsumeKeyword consumes a word if it is not followed by a word character.
	ConsumeKeyword(k string) bool

	Word() string
	Integer() (int64, error)
	Number() (any, error)
	Quoted() (string, error)

	Errorf(msg string, args ...interface{}) error
}

type scanner struct {
	in      []byte
	offset  int
	size    int
	no      int
	current rune
}

func NewScanner(in string) Scanner {
	s := &scanner{
		in: []byte(in),
	}
	s.Next()
	return s
}

func (s *scanner) Next() rune {
	if s.offset >= len(s.in) {
		s.current = 0
		s.size = 0
		return 0
	}
	r, size := utf8.DecodeRune(s.in[s.offset:])
	s.current = r
	s.size = size
	s.offset += size
	s.no++
	return r
}

func (s *scanner) Current() rune {
	return s.current
}

func (s *scanner) Peek() rune {
	if s.offset >= len(s.in) {
		return 0
	}
	r, _ := utf8.DecodeRune(s.in[s.offset:])
	return r
}

func (s *scanner) EOF() bool {
	return s.size == 0
}

func (s *scanner) Position() int {
	return s.no
}

func (s *scanner) rest() string {
	return string(s.in[s.offset-s.size:])
}

func (s *scanner) SkipBlanks() rune {
	n := s.Current()
	for unicode.IsSpace(n) {
		n = s.Next()
	}
	return n
}

func (s *scanner) ConsumeRune(r rune) error {
	if s.EOF() || s.Current() != r {
		return s.Errorf("%q expected", string(r))
	}
	s.Next()
	return nil
}

func (s *scanner) LookingAt(t string) bool {
	return t != "" && !s.EOF() && strings.HasPrefix(s.rest(), t)
}

func (s *scanner) ConsumeToken(t string) bool {
	if !s.LookingAt(t) {
		return false
	}
	for range utf8.RuneCountInString(t) {
		s.Next()
	}
	return true
}

func (s *scanner) ConsumeKeyword(k string) bool {
	if !s.LookingAt(k) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s.rest()[len(k):])
	if IsWordRune(r) {
		return false
	}
	return s.ConsumeToken(k)
}

func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Word reads a sequence of letters, digits and underscores.
func (s *scanner) Word() string {
	var b strings.Builder
	n := s.Current()
	for !s.EOF() && IsWordRune(n) {
		b.WriteRune(n)
		n = s.Next()
	}
	return b.String()
}

func (s *scanner) digits(b *strings.Builder) {
	n := s.Current()
	for !s.EOF() && unicode.IsDigit(n) {
		b.WriteRune(n)
		n = s.Next()
	}
}

func (s *scanner) Integer() (int64, error) {
	var b strings.Builder
	if s.Current() == '-' {
		b.WriteRune('-')
		s.Next()
	}
	if !unicode.IsDigit(s.Current()) {
		return 0, s.Errorf("number must be a sequence of digits, but found %q", string(s.Current()))
	}
	s.digits(&b)
	i, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, s.Errorf("invalid integer %q", b.String())
	}
	return i, nil
}

// Number reads an integer (int64) or a decimal number (float64).
func (s *scanner) Number() (any, error) {
	var b strings.Builder
	float := false
	if s.Current() == '-' {
		b.WriteRune('-')
		s.Next()
	}
	if !unicode.IsDigit(s.Current()) {
		return nil, s.Errorf("number must start with a digit, but found %q", string(s.Current()))
	}
	s.digits(&b)
	if s.Current() == '.' && unicode.IsDigit(s.Peek()) {
		float = true
		b.WriteRune('.')
		s.Next()
		s.digits(&b)
	}
	if s.Current() == 'e' || s.Current() == 'E' {
		float = true
		b.WriteRune('e')
		s.Next()
		if s.Current() == '-' || s.Current() == '+' {
			b.WriteRune(s.Current())
			s.Next()
		}
		if !unicode.IsDigit(s.Current()) {
			return nil, s.Errorf("exponent expected")
		}
		s.digits(&b)
	}
	if float {
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return nil, s.Errorf("invalid number %q", b.String())
		}
		return f, nil
	}
	i, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return nil, s.Errorf("invalid integer %q", b.String())
	}
	return i, nil
}

// Quoted reads a double-quoted string. Escapes are interpreted like
// in Go string literals. If the literal is no valid Go literal,
// the content between the quotes is returned as it is.
func (s *scanner) Quoted() (string, error) {
	if err := s.ConsumeRune('"'); err != nil {
		return "", err
	}
	var b strings.Builder
	escaped := false
	n := s.Current()
	for {
		if s.EOF() {
			return "", s.Errorf("unterminated string")
		}
		if n == '"' && !escaped {
			break
		}
		escaped = n == '\\' && !escaped
		b.WriteRune(n)
		n = s.Next()
	}
	s.Next()
	raw := b.String()
	if r, err := strconv.Unquote(`"` + raw + `"`); err == nil {
		return r, nil
	}
	return raw, nil
}

func (s *scanner) Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf("%q %d: %s", string(s.in), s.Position(), fmt.Sprintf(msg, args...))
}
