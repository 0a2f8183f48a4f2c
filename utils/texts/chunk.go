package texts

import "unicode/utf8"

// MaxMessageLength keeps replies under Telegram's 4096 character cap.
const MaxMessageLength = 3900

// Split cuts text into consecutive pieces of at most size characters. Joining
// the pieces gives back text unchanged. Cuts never fall inside a UTF-8 rune.
func Split(text string, size int) []string {
	if size <= 0 || text == "" {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if utf8.RuneCountInString(text) <= size {
			chunks = append(chunks, text)
			break
		}

		cut, count := 0, 0
		for i := range text {
			if count == size {
				cut = i
				break
			}
			count++
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}

	return chunks
}
