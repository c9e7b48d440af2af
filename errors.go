package mecabtext

import (
	"errors"

	"github.com/kotaroooo0/mecabtext/morphology"
)

var (
	// 入力ファイルのパスが空、または存在しない
	ErrInvalidFilePath = errors.New("invalid file path")
	// 解析器の実行ファイルが存在しない
	ErrInvalidAnalyzerPath = morphology.ErrInvalidAnalyzerPath
	// 解析器の出力行のフィールド数が足りない
	ErrMalformedRecord = errors.New("malformed record")
	// 文を一つも含まないテキスト
	ErrEmptyText = errors.New("empty text")
)
