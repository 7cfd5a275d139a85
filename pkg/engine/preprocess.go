package engine

import "strings"

// kwPrefix marks string literals that stand for :keywords.
const kwPrefix = "__kw_"

// preprocessSource rewrites design source into something zygomys reads:
//
//   - :keyword becomes the string literal "__kw_keyword", so keywords never
//     clash with user variables of the same name.
//   - kebab-case identifiers become snake_case (butt-joint -> butt_joint);
//     zygomys reads a hyphen as subtraction.
//   - ; and ;; line comments become // comments.
//
// String literals pass through untouched.
func preprocessSource(source string) string {
	s := &scanner{src: source}
	s.out.Grow(len(source) + len(source)/4)
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == '"':
			s.quoted('"', true)
		case c == '`':
			s.quoted('`', false)
		case c == ';':
			s.comment()
		case c == ':' && s.peek(1) == '=':
			s.copy(2)
		case c == ':' && isLetter(s.peek(1)):
			s.keyword()
		case c == '-' && s.pos > 0 && isIdentChar(s.src[s.pos-1]) && isLetter(s.peek(1)):
			s.out.WriteByte('_')
			s.pos++
		default:
			s.copy(1)
		}
	}
	return s.out.String()
}

type scanner struct {
	src string
	pos int
	out strings.Builder
}

// peek returns the byte n positions ahead, or 0 past the end.
func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) copy(n int) {
	end := min(s.pos+n, len(s.src))
	s.out.WriteString(s.src[s.pos:end])
	s.pos = end
}

// quoted copies a literal delimited by q, honouring backslash escapes
// when escapes is set.
func (s *scanner) quoted(q byte, escapes bool) {
	s.copy(1)
	for s.pos < len(s.src) && s.src[s.pos] != q {
		if escapes && s.src[s.pos] == '\\' {
			s.copy(2)
			continue
		}
		s.copy(1)
	}
	s.copy(1)
}

func (s *scanner) comment() {
	s.out.WriteString("//")
	for s.pos < len(s.src) && s.src[s.pos] == ';' {
		s.pos++
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.copy(1)
	}
}

func (s *scanner) keyword() {
	start := s.pos + 1
	end := start
	for end < len(s.src) && isKWChar(s.src[end]) {
		end++
	}
	s.out.WriteString(`"` + kwPrefix + s.src[start:end] + `"`)
	s.pos = end
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isKWChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
