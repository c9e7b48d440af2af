package morphology

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// 引数のファイルを解析結果として扱う偽のmecab
func fakeMeCab(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported")
	}
	path := filepath.Join(t.TempDir(), "mecab")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewMeCab(t *testing.T) {
	cases := []struct {
		options  []MeCabOption
		expected string
	}{
		{options: nil, expected: DefaultMeCabPath},
		{options: []MeCabOption{WithPath("/opt/mecab/bin/mecab")}, expected: "/opt/mecab/bin/mecab"},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("expected = %v", tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, NewMeCab(tt.options...).Path()); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestMeCabAnalyze(t *testing.T) {
	output := "翻訳\t名詞,サ変接続,*,*,*,*,翻訳,ホンヤク,ホンヤク\nEOS\n"
	input := writeInput(t, output)
	mecab := NewMeCab(WithPath(fakeMeCab(t, `cat "$1"`)))

	got, err := mecab.Analyze(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(output, string(got)); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestMeCabAnalyzeInvalidPath(t *testing.T) {
	cases := []struct {
		path string
	}{
		{path: ""},
		{path: "/nonexistent/bin/mecab"},
		{path: os.TempDir()},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("path = %v", tt.path), func(t *testing.T) {
			_, err := NewMeCab(WithPath(tt.path)).Analyze(context.Background(), "input.txt")
			if !errors.Is(err, ErrInvalidAnalyzerPath) {
				t.Errorf("got %v, want %v", err, ErrInvalidAnalyzerPath)
			}
		})
	}
}

func TestMeCabAnalyzeFailure(t *testing.T) {
	mecab := NewMeCab(WithPath(fakeMeCab(t, "echo 'no dictionary' >&2; exit 3")))
	_, err := mecab.Analyze(context.Background(), "input.txt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no dictionary") {
		t.Errorf("error %q does not carry stderr", err)
	}
}

func TestMeCabAnalyzeTimeout(t *testing.T) {
	mecab := NewMeCab(
		WithPath(fakeMeCab(t, "exec sleep 5")),
		WithTimeout(50*time.Millisecond),
	)
	_, err := mecab.Analyze(context.Background(), "input.txt")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want %v", err, context.DeadlineExceeded)
	}
}
