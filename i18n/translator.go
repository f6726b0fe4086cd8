package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "prefix").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須の環境変数が不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "invalid_enum":
			return "許可されていない値です"
		case "invalid_format":
			return "形式が不正です"
		case "parse_error":
			return "解析エラー"
		case "overflow":
			return "値が範囲を超えています"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "too_short":
			return "短すぎます"
		case "client_prefix":
			return "クライアントキーに接頭辞が付いていません"
		case "server_prefix":
			return "サーバーキーにクライアント接頭辞が付いています"
		case "server_only":
			return "サーバー専用の環境変数にクライアントからアクセスしました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required environment variable missing"
		case "unknown_key":
			return "unknown key"
		case "invalid_enum":
			return "value not allowed"
		case "invalid_format":
			return "invalid format"
		case "parse_error":
			return "parse error"
		case "overflow":
			return "value out of range"
		case "too_small":
			return "too small"
		case "too_big":
			return "too big"
		case "too_short":
			return "too short"
		case "client_prefix":
			return "client key missing the client prefix"
		case "server_prefix":
			return "server key carries the client prefix"
		case "server_only":
			return "server-side environment variable accessed from the client"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
