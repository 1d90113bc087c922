package llm

import "testing"

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{name: "no fences", response: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", response: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", response: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding whitespace", response: "  \n```json\n{\"a\": 1}\n```\n  ", want: `{"a": 1}`},
		{name: "empty", response: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.response); got != tt.want {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tt.response, got, tt.want)
			}
		})
	}
}
