package mecabtext

import "strings"

// Sentence is an ordered run of words between two EOS markers.
type Sentence struct {
	words []Word
}

func NewSentence(words ...Word) *Sentence {
	s := &Sentence{words: make([]Word, 0, len(words))}
	for _, w := range words {
		s.add(w)
	}
	return s
}

func (s *Sentence) add(w Word) {
	s.words = append(s.words, w)
}

// Words returns a copy of the words in analyzer order.
func (s *Sentence) Words() []Word {
	words := make([]Word, len(s.words))
	copy(words, s.words)
	return words
}

func (s *Sentence) Len() int {
	return len(s.words)
}

// Contains reports whether any word has word as its surface or root form.
func (s *Sentence) Contains(word string) bool {
	return s.IndexOf(word) >= 0
}

// IndexOf returns the position of the first word whose surface or root form
// equals word, or -1.
func (s *Sentence) IndexOf(word string) int {
	return s.IndexFunc(MatchWord(word))
}

func (s *Sentence) ContainsFunc(m Matcher) bool {
	return s.IndexFunc(m) >= 0
}

func (s *Sentence) IndexFunc(m Matcher) int {
	for i, w := range s.words {
		if m(w) {
			return i
		}
	}
	return -1
}

// ToSurface concatenates the surface forms without separators.
func (s *Sentence) ToSurface() string {
	var b strings.Builder
	for _, w := range s.words {
		b.WriteString(w.Surface())
	}
	return b.String()
}

// ToReading concatenates the readings, falling back to the surface form.
func (s *Sentence) ToReading() string {
	var b strings.Builder
	for _, w := range s.words {
		if reading, ok := w.Reading(); ok && reading != placeholder {
			b.WriteString(reading)
			continue
		}
		b.WriteString(w.Surface())
	}
	return b.String()
}

// ToRomaji joins the romanized words with a single space.
func (s *Sentence) ToRomaji() string {
	terms := make([]string, len(s.words))
	for i, w := range s.words {
		terms[i] = w.Romaji()
	}
	return strings.Join(terms, " ")
}
