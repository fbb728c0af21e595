package sanitize

import "testing"

func TestTextStripsInjectionPatterns(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"angle brackets", "<b>hello</b>", "bhello/b"},
		{"script tag", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"javascript protocol", "click javascript:alert(1)", "click alert(1)"},
		{"mixed case protocol", "JaVaScRiPt:run()", "run()"},
		{"event handler", "x onclick=steal() y", "x steal() y"},
		{"event handler mixed case", "OnLoad=bad()", "bad()"},
		{"whitespace", "  plain text  ", "plain text"},
		{"clean input", "Need a quote for palletization", "Need a quote for palletization"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.input); got != tc.want {
				t.Fatalf("Text(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTextStripsReassembledPatterns(t *testing.T) {
	// Removing a match can splice its surroundings into a fresh match; these
	// inputs are built so one substitution pass leaves a forbidden pattern.
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"nested protocol", "jjavascript:avascript: please quote me", "please quote me"},
		{"nested event handler", "oonclick=nclick=x and javascript:y", "x and y"},
		{"protocol inside handler", "onjavascript:click=steal()", "steal()"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.input); got != tc.want {
				t.Fatalf("Text(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"javascript:javascript:alert(1)",
		"jjavascript:avascript: quote",
		"oonclick=nclick=x",
		"  spaced  ",
		"onclick=x onclick=y",
		"entirely clean message",
	}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Errorf("Text not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestEmailLowercases(t *testing.T) {
	if got := Email("  John.DOE@Example.COM "); got != "john.doe@example.com" {
		t.Fatalf("Email = %q, want john.doe@example.com", got)
	}
	if got := Email(Email("MiXeD@CaSe.IO")); got != Email("MiXeD@CaSe.IO") {
		t.Fatalf("Email not idempotent")
	}
}
