package mecabtext

import (
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

// Matcher decides whether a word is a hit for a query.
type Matcher func(Word) bool

// MatchWord matches words whose surface or root form is exactly word.
func MatchWord(word string) Matcher {
	return func(w Word) bool {
		if surface, ok := get(w.surface); ok && surface == word {
			return true
		}
		root, ok := w.Root()
		return ok && root == word
	}
}

// MatchReading matches on the reading. ひらがな・カタカナの違いは無視する
func MatchReading(kana string) Matcher {
	want := jaconv.KatakanaToHiragana(kana)
	return func(w Word) bool {
		reading, ok := w.Reading()
		return ok && jaconv.KatakanaToHiragana(reading) == want
	}
}

// MatchRomaji matches the Hepburn romanization of the reading.
func MatchRomaji(romaji string) Matcher {
	want := strings.ToLower(romaji)
	return func(w Word) bool {
		return strings.ToLower(w.Romaji()) == want
	}
}

// MatchStem matches English words by their Snowball stem, for Latin script
// tokens mixed into Japanese text.
func MatchStem(word string) Matcher {
	want := english.Stem(word, false)
	return func(w Word) bool {
		if surface, ok := get(w.surface); ok && english.Stem(surface, false) == want {
			return true
		}
		root, ok := w.Root()
		return ok && root != placeholder && english.Stem(root, false) == want
	}
}

func MatchPos(pos string) Matcher {
	return func(w Word) bool {
		p, ok := get(w.pos)
		return ok && p == pos
	}
}
