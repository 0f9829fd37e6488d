package relay

import "github.com/tidwall/gjson"

// Extractor pulls a reply out of one known response shape, or returns "".
type Extractor func(doc gjson.Result) string

// Extractors are tried in order; the first non-empty result wins.
var Extractors = []Extractor{
	chatMessageContent,
	chatText,
	structuredOutputText,
	plainString,
	rawTextWrapper,
}

// ExtractReply returns "" when no shape matches; that is not an error.
func ExtractReply(raw []byte) string {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return ""
	}
	doc := gjson.ParseBytes(raw)
	for _, ex := range Extractors {
		if reply := ex(doc); reply != "" {
			return reply
		}
	}
	return ""
}

func str(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

func chatMessageContent(doc gjson.Result) string {
	return str(doc.Get("choices.0.message.content"))
}

func chatText(doc gjson.Result) string {
	return str(doc.Get("choices.0.text"))
}

func structuredOutputText(doc gjson.Result) string {
	if !doc.Get("output").IsArray() {
		return ""
	}
	return str(doc.Get("output.0.content.text"))
}

func plainString(doc gjson.Result) string {
	return str(doc)
}

func rawTextWrapper(doc gjson.Result) string {
	if !doc.IsObject() {
		return ""
	}
	return str(doc.Get("rawText"))
}
