package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/mecabtext"
	"github.com/kotaroooo0/mecabtext/internal/config"
	"github.com/kotaroooo0/mecabtext/morphology"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mecabtext [flags] COMMAND ARGS")
	fmt.Fprintln(os.Stderr, "  surface FILE     print the reconstructed surface text")
	fmt.Fprintln(os.Stderr, "  grep WORD FILE   print sentences containing WORD")
	fmt.Fprintln(os.Stderr, "  dump FILE        pretty-print the parsed tree")
	fmt.Fprintln(os.Stderr, "  index FILE       store the parsed text in MySQL")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	backend := flag.String("backend", "", "analyzer backend (mecab or kagome)")
	mecabPath := flag.String("mecab", "", "path to the mecab executable")
	timeout := flag.Duration("timeout", 0, "analyzer timeout, 0 for none")
	flag.Usage = usage
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	if *backend != "" {
		cfg.Analyzer.Backend = *backend
	}
	if *mecabPath != "" {
		cfg.Analyzer.MeCabPath = *mecabPath
	}
	if *timeout > 0 {
		cfg.Analyzer.Timeout = *timeout
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	m, err := newMorphology(cfg.Analyzer)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot initialize analyzer")
	}
	parser := mecabtext.NewParser(m)
	ctx := context.Background()

	switch args[0] {
	case "surface":
		text := parse(ctx, parser, args[1])
		fmt.Println(text.ToSurface())
	case "grep":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		word := args[1]
		text := parse(ctx, parser, args[2])
		for _, sentence := range text.Filter(word).Sentences() {
			fmt.Printf("%d\t%s\n", sentence.IndexOf(word), sentence.ToSurface())
		}
	case "dump":
		pp.Println(dump(parse(ctx, parser, args[1])))
	case "index":
		indexFile(ctx, cfg.DB, parser, args[1])
	default:
		usage()
		os.Exit(2)
	}
}

func newMorphology(cfg config.AnalyzerConfig) (morphology.Morphology, error) {
	if cfg.Backend == config.BackendKagome {
		return morphology.NewKagome()
	}
	return morphology.NewMeCab(
		morphology.WithPath(cfg.MeCabPath),
		morphology.WithTimeout(cfg.Timeout),
	), nil
}

func parse(ctx context.Context, parser *mecabtext.Parser, filePath string) *mecabtext.Text {
	text, err := parser.Parse(ctx, filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("Cannot parse file")
	}
	return text
}

func indexFile(ctx context.Context, cfg config.DBConfig, parser *mecabtext.Parser, filePath string) {
	db, err := mecabtext.NewDBClient(mecabtext.NewDBConfig(cfg.User, cfg.Password, cfg.Addr, cfg.Port, cfg.Name))
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot connect to database")
	}
	defer db.Close()

	storage := mecabtext.NewStorageRdbImpl(db)
	if err := storage.CreateTables(); err != nil {
		log.Fatal().Err(err).Msg("Cannot create tables")
	}
	id, err := mecabtext.NewIndexer(storage, parser).IndexFile(ctx, filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("Cannot index file")
	}
	fmt.Println(id)
}

// ppで表示できるように公開フィールドを持つ値へ変換する
type dumpedWord struct {
	Surface       string
	Pos           string
	Root          string
	Reading       string
	Pronunciation string
}

func dump(text *mecabtext.Text) [][]dumpedWord {
	sentences := make([][]dumpedWord, text.Len())
	for i, s := range text.Sentences() {
		for _, w := range s.Words() {
			root, _ := w.Root()
			reading, _ := w.Reading()
			pronunciation, _ := w.Pronunciation()
			sentences[i] = append(sentences[i], dumpedWord{
				Surface:       w.Surface(),
				Pos:           w.Pos(),
				Root:          root,
				Reading:       reading,
				Pronunciation: pronunciation,
			})
		}
	}
	return sentences
}
