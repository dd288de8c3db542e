package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_geometry":  "{field} must be of the form [x, y, z] where {got} was provided",
		"invalid_payload":   "{field} has unsupported type {got}",
		"set_once":          "{field} can only be set once per record",
		"prerequisite":      "{op} requires {requires} first",
		"missing_stream":    "no stream selected, call stream() first",
		"missing_pose":      "every message requires a {stream} stream",
		"missing_vertices":  "stream {stream} primitive vertices are not provided",
		"missing_image":     "stream {stream} image data are not provided",
		"missing_timestamp": "stream {stream} pose timestamp is not provided",
		"stream_metadata":   "stream {stream} is declared as {declared} but written as {got}",
	},
	"ja": {
		"invalid_geometry":  "{field} は [x, y, z] 形式である必要があります (入力: {got})",
		"invalid_payload":   "{field} の型 {got} はサポートされていません",
		"set_once":          "{field} は1レコードにつき1回のみ設定できます",
		"prerequisite":      "{op} の前に {requires} が必要です",
		"missing_stream":    "ストリームが選択されていません",
		"missing_pose":      "すべてのメッセージに {stream} ストリームが必要です",
		"missing_vertices":  "ストリーム {stream} のプリミティブ頂点がありません",
		"missing_image":     "ストリーム {stream} の画像データがありません",
		"missing_timestamp": "ストリーム {stream} のポーズにタイムスタンプがありません",
		"stream_metadata":   "ストリーム {stream} は {declared} として宣言されていますが {got} が書き込まれました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {key} placeholders with values from data. Unknown
// placeholders are left as is.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
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
