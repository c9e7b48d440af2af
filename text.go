package mecabtext

import "strings"

// Text is the parsed form of one analyzed document.
// Only sentences holding at least one word are kept.
type Text struct {
	sentences []*Sentence
}

func NewText(sentences ...*Sentence) *Text {
	t := &Text{sentences: make([]*Sentence, 0, len(sentences))}
	for _, s := range sentences {
		t.add(s)
	}
	return t
}

func (t *Text) add(s *Sentence) {
	if s == nil || s.Len() == 0 {
		return
	}
	t.sentences = append(t.sentences, s)
}

func (t *Text) Sentences() []*Sentence {
	sentences := make([]*Sentence, len(t.sentences))
	copy(sentences, t.sentences)
	return sentences
}

func (t *Text) Len() int {
	return len(t.sentences)
}

// Words flattens every sentence in document order.
func (t *Text) Words() []Word {
	var words []Word
	for _, s := range t.sentences {
		words = append(words, s.words...)
	}
	return words
}

// Contains reports whether any sentence contains word.
// 先頭の文だけでなく全ての文を走査し、見つかった時点で打ち切る
func (t *Text) Contains(word string) bool {
	return t.IndexOf(word) >= 0
}

// IndexOf returns the ordinal of the first sentence containing word, or -1.
func (t *Text) IndexOf(word string) int {
	return t.IndexFunc(MatchWord(word))
}

func (t *Text) ContainsFunc(m Matcher) bool {
	return t.IndexFunc(m) >= 0
}

func (t *Text) IndexFunc(m Matcher) int {
	for i, s := range t.sentences {
		if s.ContainsFunc(m) {
			return i
		}
	}
	return -1
}

// Filter returns a new Text holding the sentences that contain word.
// The sentences are shared with t, not copied.
func (t *Text) Filter(word string) *Text {
	return t.FilterFunc(MatchWord(word))
}

func (t *Text) FilterFunc(m Matcher) *Text {
	filtered := NewText()
	for _, s := range t.sentences {
		if s.ContainsFunc(m) {
			filtered.add(s)
		}
	}
	return filtered
}

func (t *Text) ToSurface() string {
	var b strings.Builder
	for _, s := range t.sentences {
		b.WriteString(s.ToSurface())
	}
	return b.String()
}
