package cmdutil

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

// SplitWords tokenizes s into words using shell word-splitting rules,
// removing one level of quoting. No expansions are performed: quoted and
// unquoted text is taken literally, and characters that would be
// operators in real shell input are ordinary word characters here.
func SplitWords(s string) ([]string, error) {
	parser := shellwords.NewParser()
	return parser.Parse(s)
}

// SplitWordsRelaxed is like SplitWords but tolerates malformed quoting by
// falling back to plain whitespace splitting. Kernel command lines are
// not guaranteed to be well-formed shell input.
func SplitWordsRelaxed(s string) []string {
	words, err := SplitWords(s)
	if err != nil {
		return strings.Fields(s)
	}
	return words
}
