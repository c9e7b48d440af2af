package mecabtext

import (
	"database/sql"
	_ "embed"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

const wordColumns = `w.sentence_id, w.position, w.surface, w.pos, w.pos_sub_one, w.pos_sub_two,
	w.pos_sub_three, w.inflection, w.conjugation, w.root, w.reading, w.pronunciation`

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	config := mysql.NewConfig()
	config.User = dbConfig.User
	config.Passwd = dbConfig.Password
	config.Net = "tcp"
	config.Addr = net.JoinHostPort(dbConfig.Addr, dbConfig.Port)
	config.DBName = dbConfig.DB
	db, err := sqlx.Open("mysql", config.FormatDSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// CreateTables applies schema.sql. Existing tables are left untouched.
func (s *StorageRdbImpl) CreateTables() error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *StorageRdbImpl) CountTexts() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from texts`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

// AddText stores the text, its sentences and words in one transaction.
func (s *StorageRdbImpl) AddText(text *Text) (TextID, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, err
	}
	// Commit後のRollbackは何もしない
	defer tx.Rollback()

	res, err := tx.Exec(`insert into texts (sentence_count) values (?)`, text.Len())
	if err != nil {
		return 0, err
	}
	textID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for sentencePos, sentence := range text.sentences {
		res, err := tx.Exec(`insert into sentences (text_id, position) values (?, ?)`, textID, sentencePos)
		if err != nil {
			return 0, err
		}
		sentenceID, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		for wordPos, word := range sentence.words {
			if _, err := tx.NamedExec(
				`insert into words (sentence_id, position, surface, pos, pos_sub_one, pos_sub_two,
					pos_sub_three, inflection, conjugation, root, reading, pronunciation)
				values (:sentence_id, :position, :surface, :pos, :pos_sub_one, :pos_sub_two,
					:pos_sub_three, :inflection, :conjugation, :root, :reading, :pronunciation)`,
				newWordRow(uint64(sentenceID), wordPos, word)); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return TextID(textID), nil
}

func (s *StorageRdbImpl) GetText(id TextID) (*Text, error) {
	var count int
	if err := s.DB.Get(&count, `select count(*) from texts where id = ?`, id); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("text %d: %w", id, sql.ErrNoRows)
	}

	var rows []wordRow
	if err := s.DB.Select(&rows,
		`select `+wordColumns+`
		from
			words w
			join sentences s on w.sentence_id = s.id
		where
			s.text_id = ?
		order by s.position, w.position`, id); err != nil {
		return nil, err
	}
	return buildText(rows), nil
}

func (s *StorageRdbImpl) GetSentencesByWord(word string) (*Text, error) {
	var rows []wordRow
	if err := s.DB.Select(&rows,
		`select `+wordColumns+`
		from
			words w
			join sentences s on w.sentence_id = s.id
		where
			w.sentence_id in (select sentence_id from words where surface = ? or root = ?)
		order by s.text_id, s.position, w.position`, word, word); err != nil {
		return nil, err
	}
	return buildText(rows), nil
}

type wordRow struct {
	SentenceID    uint64  `db:"sentence_id"`
	Position      int     `db:"position"`
	Surface       *string `db:"surface"`
	Pos           *string `db:"pos"`
	PosSubOne     *string `db:"pos_sub_one"`
	PosSubTwo     *string `db:"pos_sub_two"`
	PosSubThree   *string `db:"pos_sub_three"`
	Inflection    *string `db:"inflection"`
	Conjugation   *string `db:"conjugation"`
	Root          *string `db:"root"`
	Reading       *string `db:"reading"`
	Pronunciation *string `db:"pronunciation"`
}

func newWordRow(sentenceID uint64, position int, w Word) wordRow {
	return wordRow{
		SentenceID:    sentenceID,
		Position:      position,
		Surface:       w.surface,
		Pos:           w.pos,
		PosSubOne:     w.posSubOne,
		PosSubTwo:     w.posSubTwo,
		PosSubThree:   w.posSubThree,
		Inflection:    w.inflection,
		Conjugation:   w.conjugation,
		Root:          w.root,
		Reading:       w.reading,
		Pronunciation: w.pronunciation,
	}
}

func (r wordRow) word() Word {
	return Word{
		surface:       r.Surface,
		pos:           r.Pos,
		posSubOne:     r.PosSubOne,
		posSubTwo:     r.PosSubTwo,
		posSubThree:   r.PosSubThree,
		inflection:    r.Inflection,
		conjugation:   r.Conjugation,
		root:          r.Root,
		reading:       r.Reading,
		pronunciation: r.Pronunciation,
	}
}

// rowsは文・単語の位置順に並んでいる前提
func buildText(rows []wordRow) *Text {
	text := NewText()
	var current *Sentence
	var currentID uint64
	for _, r := range rows {
		if current == nil || r.SentenceID != currentID {
			text.add(current)
			current = NewSentence()
			currentID = r.SentenceID
		}
		current.add(r.word())
	}
	text.add(current)
	return text
}
