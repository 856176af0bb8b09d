package analyses

import "testing"

func TestCleanModelResponse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced json with surrounding prose",
			raw:  "prefix ```json\n{\"a\":1}\n``` suffix",
			want: `{"a":1}`,
		},
		{
			name: "fenced json with extra whitespace",
			raw:  "```json   \n\n  {\"ats_score\": 88}  \n\n```",
			want: `{"ats_score": 88}`,
		},
		{
			name: "no fenced block returns trimmed input",
			raw:  "  just plain text  ",
			want: "just plain text",
		},
		{
			name: "invalid json inside fence falls back to whole input",
			raw:  "```json\n{bad}\n```",
			want: "```json\n{bad}\n```",
		},
		{
			name: "first of multiple fences wins",
			raw:  "```json\n{\"first\":true}\n``` and ```json\n{\"second\":true}\n```",
			want: `{"first":true}`,
		},
		{
			name: "captured object is returned byte for byte",
			raw:  "```json\n{ \"a\" :  1 }\n```",
			want: `{ "a" :  1 }`,
		},
		{
			name: "unlabeled fence is ignored",
			raw:  "```\n{\"a\":1}\n```",
			want: "```\n{\"a\":1}\n```",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanModelResponse(tc.raw)
			if got != tc.want {
				t.Fatalf("CleanModelResponse(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
