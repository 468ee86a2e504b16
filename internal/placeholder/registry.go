package placeholder

// Entry is one extracted span: the source text and what it restores to.
type Entry struct {
	Original string
	Rendered string
}

// Registry records extracted spans per kind, in order of appearance.
//
// Entries are append-only. The i-th entry of a kind belongs to Token{kind, i}.
type Registry struct {
	entries map[Kind][]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Kind][]Entry)}
}

// Add records a span and returns the token that stands in for it.
func (r *Registry) Add(kind Kind, original, rendered string) Token {
	tok := Token{Kind: kind, Index: len(r.entries[kind])}
	r.entries[kind] = append(r.entries[kind], Entry{Original: original, Rendered: rendered})
	return tok
}

// Entries returns the spans recorded for kind.
func (r *Registry) Entries(kind Kind) []Entry {
	return r.entries[kind]
}

// Lookup returns the entry a token refers to.
func (r *Registry) Lookup(tok Token) (Entry, bool) {
	list := r.entries[tok.Kind]
	if tok.Index < 0 || tok.Index >= len(list) {
		return Entry{}, false
	}
	return list[tok.Index], true
}

// Len returns the number of spans recorded for kind.
func (r *Registry) Len(kind Kind) int {
	return len(r.entries[kind])
}

// Total returns the number of spans across all kinds.
func (r *Registry) Total() int {
	n := 0
	for _, list := range r.entries {
		n += len(list)
	}
	return n
}
