package morphology

import (
	"bytes"
	"context"
	"os"
	"strings"

	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA辞書の素性数
const featureCount = 9

// Kagome analyzes in process with kagome and writes the same line format as
// mecab, so both feed one parser.
// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

func NewKagome() (*Kagome, error) {
	tokenizer, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: tokenizer,
	}, nil
}

func (k *Kagome) Analyze(ctx context.Context, filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	// mecabと同じく入力の1行を1文として扱う
	for _, line := range strings.Split(string(b), "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		k.analyzeLine(&out, line)
	}
	return out.Bytes(), nil
}

func (k *Kagome) analyzeLine(out *bytes.Buffer, line string) {
	for _, token := range k.kagome.Tokenize(line) {
		features := token.Features()
		if len(features) > 1 && features[1] == "空白" {
			continue
		}
		out.WriteString(token.Surface)
		out.WriteByte('\t')
		out.WriteString(strings.Join(padFeatures(features), ","))
		out.WriteByte('\n')
	}
	out.WriteString(EOS)
	out.WriteByte('\n')
}

// 未知語は読み・発音を持たないので "*" で埋める
func padFeatures(features []string) []string {
	if len(features) >= featureCount {
		return features
	}
	padded := make([]string, featureCount)
	copy(padded, features)
	for i := len(features); i < featureCount; i++ {
		padded[i] = "*"
	}
	return padded
}
