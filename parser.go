package mecabtext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kotaroooo0/mecabtext/morphology"
	"github.com/rs/zerolog/log"
)

// Parser turns a file into a Text through a morphological analyzer.
type Parser struct {
	morphology morphology.Morphology
}

func NewParser(morphology morphology.Morphology) *Parser {
	return &Parser{
		morphology: morphology,
	}
}

// Parse analyzes filePath and builds its Text.
// ファイルが存在しなければ解析器を起動しない
func (p *Parser) Parse(ctx context.Context, filePath string) (*Text, error) {
	if err := validateFilePath(filePath); err != nil {
		return nil, err
	}
	out, err := p.morphology.Analyze(ctx, filePath)
	if err != nil {
		return nil, err
	}
	text, err := ParseOutput(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return text, nil
}

// Parse runs mecab at analyzerPath over filePath. An empty analyzerPath
// selects morphology.DefaultMeCabPath.
func Parse(ctx context.Context, filePath, analyzerPath string) (*Text, error) {
	var options []morphology.MeCabOption
	if analyzerPath != "" {
		options = append(options, morphology.WithPath(analyzerPath))
	}
	return NewParser(morphology.NewMeCab(options...)).Parse(ctx, filePath)
}

// ParseOutput segments raw analyzer output into sentences on EOS lines.
// 空の文は追加しないので、EOSが連続しても空の文はできない。
// 最後のEOSの後に残ったトークンは1文として追加する。
func ParseOutput(out []byte) (*Text, error) {
	text := NewText()
	current := NewSentence()
	for i, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		switch trimmed := strings.Trim(line, asciiSpace); {
		case trimmed == morphology.EOS:
			if current.Len() > 0 {
				text.add(current)
				current = NewSentence()
			}
		case trimmed == "":
			continue
		default:
			word, err := ParseWord(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			current.add(word)
		}
	}
	text.add(current)

	log.Debug().Int("sentences", text.Len()).Int("bytes", len(out)).Msg("parsed analyzer output")
	return text, nil
}

func validateFilePath(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidFilePath)
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFilePath, filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidFilePath, filePath)
	}
	return nil
}
