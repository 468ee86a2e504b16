package telegramify

import "strings"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures message length in UTF-16 code units, not Go string bytes
// or runes. Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16
// code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// SplitMessage splits text into chunks of at most maxLen UTF-16 code units.
//
// Lines are packed greedily and never split: a line longer than maxLen on
// its own becomes a single oversized chunk. strings.Join(chunks, "\n")
// always equals text. maxLen <= 0 means DefaultMaxLength.
func SplitMessage(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	if UTF16Len(text) <= maxLen {
		return []string{text}
	}

	var (
		chunks     []string
		current    strings.Builder
		currentLen int
		started    bool
	)

	for _, line := range strings.Split(text, "\n") {
		lineLen := UTF16Len(line)
		if started && currentLen+1+lineLen > maxLen {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
			started = false
		}
		if started {
			current.WriteByte('\n')
			currentLen++
		}
		current.WriteString(line)
		currentLen += lineLen
		started = true
	}
	if started {
		chunks = append(chunks, current.String())
	}

	return chunks
}
