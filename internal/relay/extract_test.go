package relay

import "testing"

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"chat message content", `{"choices":[{"message":{"content":"X"}}]}`, "X"},
		{"legacy completion text", `{"choices":[{"text":"T"}]}`, "T"},
		{"content preferred over text", `{"choices":[{"message":{"content":"C"},"text":"T"}]}`, "C"},
		{"empty content falls to text", `{"choices":[{"message":{"content":""},"text":"T"}]}`, "T"},
		{"structured output", `{"output":[{"content":{"text":"O"}}]}`, "O"},
		{"output not an array", `{"output":{"content":{"text":"O"}}}`, ""},
		{"plain json string", `"just text"`, "just text"},
		{"raw text wrapper", `{"rawText":"<html>oops</html>"}`, "<html>oops</html>"},
		{"unknown object", `{"foo":"bar"}`, ""},
		{"non string content", `{"choices":[{"message":{"content":42}}]}`, ""},
		{"empty choices", `{"choices":[]}`, ""},
		{"number document", `3`, ""},
		{"invalid json", `{nope`, ""},
		{"empty input", ``, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractReply([]byte(tc.raw)); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
