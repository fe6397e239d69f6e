package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"group/project", "group%2Fproject"},
		{"group%2Fproject", "group%2Fproject"},
		{"group%2fproject", "group%2Fproject"},
		{"src/dir name/a b.py", "src%2Fdir%20name%2Fa%20b.py"},
		{"a+b", "a%2Bb"},
		{"a:b@c;d=e&f$g,h", "a%3Ab%40c%3Bd%3De%26f%24g%2Ch"},
		{"unreserved-_.~", "unreserved-_.~"},
		{"100%", "100%25"},
		{"%zz", "%25zz"},
		{"ünï", "%C3%BCn%C3%AF"},
		{"", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Encode(tc.input))
		})
	}
}

func TestEncode_Idempotent(t *testing.T) {
	inputs := []string{
		"group/sub/project",
		"path with spaces/file.txt",
		"a+b=c&d",
		"dir/ünïcode.md",
		"already%2Fencoded",
		"~user/.config",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := Encode(input)
			assert.Equal(t, once, Encode(once))
		})
	}
}
