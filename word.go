package mecabtext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

// 解析器が「該当なし」を表すために出力する値
const placeholder = "*"

// 1行あたりの必須フィールド数(表層形 + 素性9個)
const fieldCount = 10

// 区切りとして扱う空白はASCIIのみ。全角空白(U+3000)は表層形や素性の値になりうる。
const asciiSpace = " \t\r"

var delimiterRe = regexp.MustCompile(`[ \t]+`)

// Word is a single token emitted by the analyzer. Every field is optional;
// a record built by ParseWord always carries surface and pos.
type Word struct {
	surface       *string
	pos           *string
	posSubOne     *string
	posSubTwo     *string
	posSubThree   *string
	inflection    *string
	conjugation   *string
	root          *string
	reading       *string
	pronunciation *string
}

type WordOption func(*Word)

// NewWord builds a Word without going through the analyzer output format.
func NewWord(surface, pos string, options ...WordOption) Word {
	word := Word{surface: &surface, pos: &pos}
	for _, option := range options {
		option(&word)
	}
	return word
}

func WithPosSubs(one, two, three string) WordOption {
	return func(w *Word) {
		w.posSubOne = subClass(one)
		w.posSubTwo = subClass(two)
		w.posSubThree = subClass(three)
	}
}

func WithInflection(inflection string) WordOption {
	return func(w *Word) { w.inflection = &inflection }
}

func WithConjugation(conjugation string) WordOption {
	return func(w *Word) { w.conjugation = &conjugation }
}

func WithRoot(root string) WordOption {
	return func(w *Word) { w.root = &root }
}

func WithReading(reading string) WordOption {
	return func(w *Word) { w.reading = &reading }
}

func WithPronunciation(pronunciation string) WordOption {
	return func(w *Word) { w.pronunciation = &pronunciation }
}

// ParseWord parses one analyzer line of the form
// "<surface><whitespace><f1>,<f2>,...,<f9>".
// An empty line yields the zero Word and no error.
func ParseWord(line string) (Word, error) {
	var w Word
	if line == "" {
		return w, nil
	}
	fields := splitFields(line)
	if len(fields) < fieldCount {
		return w, fmt.Errorf("%w: %d fields in %q", ErrMalformedRecord, len(fields), line)
	}
	w.surface = value(fields[0])
	w.pos = value(fields[1])
	w.posSubOne = subClass(fields[2])
	w.posSubTwo = subClass(fields[3])
	w.posSubThree = subClass(fields[4])
	w.inflection = value(fields[5])
	w.conjugation = value(fields[6])
	w.root = value(fields[7])
	w.reading = value(fields[8])
	w.pronunciation = value(fields[9])
	return w, nil
}

// 表層形はタブの前まで。タブがなければ最初の半角空白の前までを取る。
// 残りは半角空白の連続を区切りに置き換えてカンマで分割する。
// 表層形が "," や全角空白のトークンも壊さない。
func splitFields(line string) []string {
	line = strings.Trim(line, asciiSpace)
	i := strings.IndexByte(line, '\t')
	if i < 0 {
		i = strings.IndexByte(line, ' ')
	}
	if i < 0 {
		return strings.Split(line, ",")
	}
	rest := delimiterRe.ReplaceAllString(strings.Trim(line[i+1:], asciiSpace), ",")
	return append([]string{line[:i]}, strings.Split(rest, ",")...)
}

func value(s string) *string {
	return &s
}

func subClass(s string) *string {
	if s == placeholder {
		return nil
	}
	return &s
}

func get(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func (w Word) Surface() string {
	s, _ := get(w.surface)
	return s
}

func (w Word) Pos() string {
	s, _ := get(w.pos)
	return s
}

func (w Word) PosSubOne() (string, bool)     { return get(w.posSubOne) }
func (w Word) PosSubTwo() (string, bool)     { return get(w.posSubTwo) }
func (w Word) PosSubThree() (string, bool)   { return get(w.posSubThree) }
func (w Word) Inflection() (string, bool)    { return get(w.inflection) }
func (w Word) Conjugation() (string, bool)   { return get(w.conjugation) }
func (w Word) Root() (string, bool)          { return get(w.root) }
func (w Word) Reading() (string, bool)       { return get(w.reading) }
func (w Word) Pronunciation() (string, bool) { return get(w.pronunciation) }

// IsZero reports whether no field was populated, e.g. the result of parsing an empty line.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Romaji returns the Hepburn romanization of the reading.
// 読みがない場合は表層形をそのまま返す
func (w Word) Romaji() string {
	reading, ok := w.Reading()
	if !ok || reading == placeholder {
		return w.Surface()
	}
	return jaconv.ToHebon(jaconv.KatakanaToHiragana(reading))
}

// String renders the word back into a single analyzer line.
func (w Word) String() string {
	features := make([]string, 0, fieldCount-1)
	for _, p := range []*string{
		w.pos, w.posSubOne, w.posSubTwo, w.posSubThree,
		w.inflection, w.conjugation, w.root, w.reading, w.pronunciation,
	} {
		if s, ok := get(p); ok {
			features = append(features, s)
		} else {
			features = append(features, placeholder)
		}
	}
	return w.Surface() + "\t" + strings.Join(features, ",")
}
