package automaton

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"empty", "", true},
		{"single char", "a", false},
		{"balanced", "(a|b)c", false},
		{"unmatched open", "(ab", true},
		{"unmatched close", "ab)", true},
		{"negative depth", "a)(b", true},
		{"nested balanced", "((a|b)*c)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"single char", "a", "a"},
		{"concat", "ab", "ab."},
		{"union", "a|b", "ab|"},
		{"star", "a*", "a*"},
		{"concat then star", "ab*", "ab*."},
		{"group then star", "(ab)*", "ab.*"},
		{"union with grouping", "(a|b)c", "ab|c."},
		{"if keyword", "if", "if."},
		{"digits", "(0|1)(0|1)*", "01|01|*."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(tt.pattern)
			if err != nil {
				t.Fatalf("ToPostfix(%q) returned error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestToPostfixMalformed(t *testing.T) {
	for _, pattern := range []string{"", "(a", "a)", ")("} {
		if _, err := ToPostfix(pattern); err == nil {
			t.Errorf("ToPostfix(%q) expected error, got nil", pattern)
		}
	}
}
