package textutil

import "testing"

func TestNormalize_LowerCases(t *testing.T) {
	result := Normalize("Eiffel Tower")

	if result != "eiffel tower" {
		t.Errorf("Normalize = %q, want %q", result, "eiffel tower")
	}
}

func TestNormalize_StripsDiacritics(t *testing.T) {
	result := Normalize("Café")

	if result != "cafe" {
		t.Errorf("Normalize = %q, want %q", result, "cafe")
	}
}

func TestNormalize_RemovesPunctuation(t *testing.T) {
	result := Normalize("Saint-Denis, France!")

	if result != "saintdenis france" {
		t.Errorf("Normalize = %q, want %q", result, "saintdenis france")
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if result := Normalize(""); result != "" {
		t.Errorf("Normalize(\"\") = %q, want \"\"", result)
	}
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	result := Normalize("  Paris  ")

	if result != "paris" {
		t.Errorf("Normalize = %q, want %q", result, "paris")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Café de Flore",
		"São Paulo",
		"MÜNCHEN!!!",
		"  mixed   Spacing\tand\nlines  ",
		"already normalized text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
