package jsonextract

import (
	"errors"
	"testing"
)

func TestFirstObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"caption":"B"}`,
			want: `{"caption":"B"}`,
		},
		{
			name: "object wrapped in prose",
			in:   `Sure! {"caption":"B","post_type":"Reel"} Hope that helps!`,
			want: `{"caption":"B","post_type":"Reel"}`,
		},
		{
			name: "nested braces",
			in:   `result: {"a":{"b":{"c":1}},"d":2} trailing`,
			want: `{"a":{"b":{"c":1}},"d":2}`,
		},
		{
			name: "braces inside string literals",
			in:   `{"caption":"use {curly} braces :}"}`,
			want: `{"caption":"use {curly} braces :}"}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"caption":"she said \"hi\" {ok}"} extra`,
			want: `{"caption":"she said \"hi\" {ok}"}`,
		},
		{
			name: "multiple candidates takes the first balanced",
			in:   `{"a":1} and later {"b":2}`,
			want: `{"a":1}`,
		},
		{
			name: "unbalanced first candidate falls through to the next",
			in:   `broken {"a": 1 ... then {"b":2}`,
			want: `{"b":2}`,
		},
		{
			name:    "no object at all",
			in:      "I think a Reel about the lake would work well.",
			wantErr: true,
		},
		{
			name:    "never closes",
			in:      `{"a": 1`,
			wantErr: true,
		},
		{
			name:    "empty input",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstObject(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNoObject) {
					t.Fatalf("expected ErrNoObject, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
