package texts

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	got := Split("hello", MaxMessageLength)
	if len(got) != 1 || got[0] != "hello" {
		t.Fatalf("unexpected chunks %q", got)
	}
}

func TestSplit_LengthsAndConcatenation(t *testing.T) {
	for _, l := range []int{3900, 3901, 7800, 7801, 12000} {
		text := strings.Repeat("a", l)
		got := Split(text, MaxMessageLength)

		want := (l + MaxMessageLength - 1) / MaxMessageLength
		if len(got) != want {
			t.Fatalf("L=%d: expected %d chunks, got %d", l, want, len(got))
		}
		for i, c := range got {
			if len(c) > MaxMessageLength {
				t.Fatalf("L=%d: chunk %d too long (%d)", l, i, len(c))
			}
		}
		if strings.Join(got, "") != text {
			t.Fatalf("L=%d: concatenation differs", l)
		}
	}
}

func TestSplit_MultiByteRunes(t *testing.T) {
	text := strings.Repeat("é🚀", 5)
	got := Split(text, 3)

	if len(got) != 4 {
		t.Fatalf("expected 4 chunks, got %d: %q", len(got), got)
	}
	for _, c := range got {
		if !utf8.ValidString(c) {
			t.Fatalf("chunk split a rune: %q", c)
		}
	}
	if strings.Join(got, "") != text {
		t.Fatal("concatenation differs")
	}
}

func TestSplit_EmptyText(t *testing.T) {
	got := Split("", MaxMessageLength)
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("unexpected chunks %q", got)
	}
}
