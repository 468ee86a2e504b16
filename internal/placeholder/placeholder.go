// Package placeholder 定义哨兵占位符与提取注册表
//
// 占位符格式：'\x00' + 类型标签 + 十进制序号 + '\x01'。
// 两个控制字节在进入管道前已从输入中移除，因此占位符不会与输入内容冲突。
package placeholder

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// Open starts every token.
	Open = '\x00'
	// Close terminates every token.
	Close = '\x01'
)

// Kind is the category of a protected span.
type Kind int

const (
	CodeBlock Kind = iota
	InlineCode
	Mention
	URL
	IDToken
)

// Kinds lists every kind in restore order.
var Kinds = []Kind{CodeBlock, InlineCode, Mention, URL, IDToken}

var labels = map[Kind]string{
	CodeBlock:  "CODEBLOCK",
	InlineCode: "INLINECODE",
	Mention:    "MENTION",
	URL:        "URL",
	IDToken:    "ID",
}

// String returns the token label of the kind.
func (k Kind) String() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return "UNKNOWN"
}

// KindFromLabel resolves a token label back to its kind.
func KindFromLabel(label string) (Kind, bool) {
	for k, l := range labels {
		if l == label {
			return k, true
		}
	}
	return 0, false
}

// Pattern matches any well-formed token. Group 1 is the label, group 2 the index.
var Pattern = regexp.MustCompile(`\x00([A-Z]+)([0-9]+)\x01`)

// Token identifies one protected span: the Index-th extraction of Kind.
type Token struct {
	Kind  Kind
	Index int
}

// Encode serializes the token into its in-buffer form.
func (t Token) Encode() string {
	var sb strings.Builder
	sb.WriteByte(Open)
	sb.WriteString(t.Kind.String())
	sb.WriteString(strconv.Itoa(t.Index))
	sb.WriteByte(Close)
	return sb.String()
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return t.Kind.String() + "#" + strconv.Itoa(t.Index)
}

// Decode parses s, which must be exactly one encoded token.
func Decode(s string) (Token, bool) {
	m := Pattern.FindStringSubmatch(s)
	if m == nil || len(m[0]) != len(s) {
		return Token{}, false
	}
	kind, ok := KindFromLabel(m[1])
	if !ok {
		return Token{}, false
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil {
		return Token{}, false
	}
	return Token{Kind: kind, Index: idx}, true
}

// Sanitize removes both control bytes so that input can never forge a token.
func Sanitize(text string) string {
	if !strings.ContainsAny(text, "\x00\x01") {
		return text
	}
	return strings.Map(func(r rune) rune {
		if r == Open || r == Close {
			return -1
		}
		return r
	}, text)
}
