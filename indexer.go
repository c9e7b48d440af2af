package mecabtext

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Indexer struct {
	Parser  *Parser // ファイルをテキストに変換する
	Storage Storage // 永続化層
}

func NewIndexer(storage Storage, parser *Parser) *Indexer {
	return &Indexer{
		Parser:  parser,
		Storage: storage,
	}
}

// 1.ファイルを解析してテキストを組み立てる
// 2.文を一つも含まなければ格納しない
// 3.ストレージに格納し、テキストIDを返す
func (i *Indexer) IndexFile(ctx context.Context, filePath string) (TextID, error) {
	text, err := i.Parser.Parse(ctx, filePath)
	if err != nil {
		return 0, err
	}
	if text.Len() == 0 {
		return 0, fmt.Errorf("%s: %w", filePath, ErrEmptyText)
	}
	id, err := i.Storage.AddText(text)
	if err != nil {
		return 0, err
	}
	log.Debug().Str("file", filePath).Uint64("textID", uint64(id)).Int("sentences", text.Len()).Msg("indexed text")
	return id, nil
}
