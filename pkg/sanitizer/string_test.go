package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Marques Brownlee  ",
			want:  "Marques Brownlee",
		},
		{
			name:  "multiple spaces between words",
			input: "Marques    Brownlee",
			want:  "Marques Brownlee",
		},
		{
			name:  "tabs and newlines",
			input: "Marques\t\nBrownlee",
			want:  "Marques Brownlee",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Spa™ ",
			want:  "Café & Spa™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeName(got); again != got {
				t.Errorf("NormalizeName not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeText_KeepsLineBreaks(t *testing.T) {
	got := NormalizeText("  first line\nsecond line  ")
	if got != "first line\nsecond line" {
		t.Errorf("NormalizeText = %q", got)
	}
}
