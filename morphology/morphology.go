package morphology

import (
	"context"
	"errors"
)

// 文末を表す解析器の出力
const EOS = "EOS"

var ErrInvalidAnalyzerPath = errors.New("invalid analyzer path")

// Morphology runs morphological analysis over a file and returns the raw
// analyzer output: one "surface\tfeatures" line per token and an EOS line
// after each sentence.
type Morphology interface {
	Analyze(ctx context.Context, filePath string) ([]byte, error)
}
