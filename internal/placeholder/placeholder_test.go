package placeholder

import (
	"strings"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"code block", Token{CodeBlock, 0}, "\x00CODEBLOCK0\x01"},
		{"inline code", Token{InlineCode, 12}, "\x00INLINECODE12\x01"},
		{"mention", Token{Mention, 3}, "\x00MENTION3\x01"},
		{"url", Token{URL, 7}, "\x00URL7\x01"},
		{"id token", Token{IDToken, 100}, "\x00ID100\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tok.Encode()
			if got != tt.want {
				t.Fatalf("Encode() = %q, want %q", got, tt.want)
			}
			back, ok := Decode(got)
			if !ok {
				t.Fatalf("Decode(%q) failed", got)
			}
			if back != tt.tok {
				t.Errorf("Decode() = %v, want %v", back, tt.tok)
			}
		})
	}
}

func TestDecode_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"CODEBLOCK0",
		"\x00CODEBLOCK\x01",
		"\x00NOPE1\x01",
		"\x00URL1\x01trailing",
		"x\x00URL1\x01",
		"\x00url1\x01",
	}
	for _, in := range inputs {
		if _, ok := Decode(in); ok {
			t.Errorf("Decode(%q) should fail", in)
		}
	}
}

func TestTokensNeverCollide(t *testing.T) {
	seen := make(map[string]Token)
	for _, k := range Kinds {
		for i := 0; i < 200; i++ {
			tok := Token{k, i}
			enc := tok.Encode()
			if prev, dup := seen[enc]; dup {
				t.Fatalf("%v and %v both encode to %q", prev, tok, enc)
			}
			seen[enc] = tok
		}
	}
}

func TestLabelsHaveNoEmphasisMarkers(t *testing.T) {
	for _, k := range Kinds {
		if strings.ContainsAny(k.String(), "_*~&<>") {
			t.Errorf("label %q contains a markup character", k.String())
		}
	}
}

func TestSanitize(t *testing.T) {
	in := "a\x00CODEBLOCK0\x01b"
	got := Sanitize(in)
	if got != "aCODEBLOCK0b" {
		t.Errorf("Sanitize() = %q", got)
	}
	if Sanitize("plain") != "plain" {
		t.Error("Sanitize() should leave clean text untouched")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	a := reg.Add(Mention, "@a", "@a")
	b := reg.Add(Mention, "@b", "@b")
	c := reg.Add(URL, "https://x", "https://x")

	if a.Index != 0 || b.Index != 1 || c.Index != 0 {
		t.Fatalf("unexpected indices: %v %v %v", a, b, c)
	}
	if reg.Len(Mention) != 2 || reg.Total() != 3 {
		t.Errorf("Len = %d, Total = %d", reg.Len(Mention), reg.Total())
	}
	e, ok := reg.Lookup(b)
	if !ok || e.Original != "@b" {
		t.Errorf("Lookup(%v) = %+v, %v", b, e, ok)
	}
	if _, ok := reg.Lookup(Token{IDToken, 0}); ok {
		t.Error("Lookup of missing token should fail")
	}
}
