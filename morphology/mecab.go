package morphology

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultMeCabPath = "/usr/local/bin/mecab"

// MeCab runs the external mecab executable once per file.
type MeCab struct {
	path    string
	timeout time.Duration // 0なら無制限
}

type MeCabOption func(*MeCab)

func WithPath(path string) MeCabOption {
	return func(m *MeCab) {
		m.path = path
	}
}

func WithTimeout(timeout time.Duration) MeCabOption {
	return func(m *MeCab) {
		m.timeout = timeout
	}
}

func NewMeCab(options ...MeCabOption) *MeCab {
	m := &MeCab{path: DefaultMeCabPath}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MeCab) Path() string {
	return m.path
}

// Analyze blocks until mecab exits and returns its whole stdout.
func (m *MeCab) Analyze(ctx context.Context, filePath string) ([]byte, error) {
	// 実行ファイルがなければプロセスを起動しない
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.path, filePath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	log.Debug().Str("analyzer", m.path).Str("file", filePath).Msg("running mecab")
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("mecab %s: %w", filePath, ctxErr)
		}
		return nil, fmt.Errorf("mecab %s: %w: %s", filePath, err, strings.TrimSpace(stderr.String()))
	}
	log.Debug().
		Str("file", filePath).
		Int("bytes", stdout.Len()).
		Dur("took", time.Since(start)).
		Msg("mecab finished")
	return stdout.Bytes(), nil
}

func (m *MeCab) validate() error {
	if m.path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidAnalyzerPath)
	}
	info, err := os.Stat(m.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidAnalyzerPath, m.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidAnalyzerPath, m.path)
	}
	return nil
}
