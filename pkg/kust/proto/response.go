package proto

import "strings"

// ErrCodeOK is the error code of a successful response.
const ErrCodeOK = "00"

// Response is the decoded form of one line from the interface box.
// The zero value is the failure sentinel: transport failures and
// garbled lines both decode to it, and it never validates.
type Response struct {
	Command string
	ErrCode string
	Value   string
}

// OK reports whether the response answers cmd without error.
func (r Response) OK(cmd string) bool {
	return r.Command == cmd && r.ErrCode == ErrCodeOK
}

// Parse decodes one response line. The grammar is fixed: box prefix,
// exactly two letters, literal "er", exactly two digits, optional
// word-character filler, at most one whitespace, an optional '+'
// sign, then either a five-digit numeric field or free trailing
// text. Anything that does not fit decodes to the sentinel. Parse
// never fails with an error value; the sentinel is the failure.
func Parse(line string) Response {
	s := strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(s, BoxPrefix) {
		return Response{}
	}
	s = s[len(BoxPrefix):]
	if len(s) < 6 {
		return Response{}
	}
	cmd, code := s[:2], s[4:6]
	if !isLetter(cmd[0]) || !isLetter(cmd[1]) || s[2:4] != "er" ||
		!isDigit(code[0]) || !isDigit(code[1]) {
		return Response{}
	}
	return Response{Command: cmd, ErrCode: code, Value: value(s[6:])}
}

// value extracts the value field following the error code: skip the
// filler run, at most one whitespace, an optional '+', then take the
// five-digit field if one is there, the raw remainder otherwise.
func value(s string) string {
	i := 0
	for i < len(s) && isWord(s[i]) {
		i++
	}
	if i == len(s) {
		// whole tail consumed as filler, value is empty
		return ""
	}
	if s[i] == ' ' || s[i] == '\t' {
		i++
	}
	if i < len(s) && s[i] == '+' {
		i++
	}
	rest := s[i:]
	if len(rest) >= 5 && allDigits(rest[:5]) {
		return rest[:5]
	}
	return rest
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWord(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
