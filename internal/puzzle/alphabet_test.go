package puzzle

import "testing"

func TestIsGuessable(t *testing.T) {
	tests := []struct {
		char rune
		want bool
	}{
		{'A', true},
		{'Z', true},
		{'7', true},
		{'Ç', true},
		{'Ğ', true},
		{'İ', true},
		{'Ö', true},
		{'Ş', true},
		{'Ü', true},
		{' ', false},
		{'!', false},
		{'-', false},
		{'a', false}, // phrases are normalized before classification
		{'É', false},
	}

	for _, tt := range tests {
		if got := IsGuessable(tt.char); got != tt.want {
			t.Errorf("IsGuessable(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}

func TestKeyboardCoversGuessableSet(t *testing.T) {
	keys := Keyboard()
	if len(keys) != 32+10 {
		t.Fatalf("Keyboard() has %d keys, want 42", len(keys))
	}
	for _, k := range keys {
		if !IsGuessable(k) {
			t.Errorf("Keyboard key %q is not guessable", k)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cat", "CAT"},
		{"Sabrın sonu", "SABRIN SONU"},
		{"İstanbul", "İSTANBUL"},
		{"şeker", "ŞEKER"},
		{"C\u0327ay", "ÇAY"}, // combining cedilla composes to Ç
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if got := NormalizeRune('ü'); got != 'Ü' {
		t.Errorf("NormalizeRune('ü') = %q, want 'Ü'", got)
	}
	if got := NormalizeRune('ß'); got != 'ß' {
		t.Errorf("NormalizeRune('ß') = %q, want unchanged", got)
	}
}
