package mecabtext

type TextID uint64

type Storage interface {
	AddText(*Text) (TextID, error)            // テキストを文・単語ごと挿入する。挿入したテキストのIDを返す。
	GetText(TextID) (*Text, error)            // IDからテキストを復元する
	GetSentencesByWord(string) (*Text, error) // 表層形か原形が一致する単語を含む文を全テキストから集める
	CountTexts() (int, error)                 // 格納されているテキスト数を返す
}
