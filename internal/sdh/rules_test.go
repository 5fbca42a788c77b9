package sdh

import "testing"

func aggressive(t *testing.T) Config {
	t.Helper()
	cfg, ok := Preset("aggressive")
	if !ok {
		t.Fatal("aggressive preset missing")
	}
	return cfg
}

func TestCleanLineStripsAnnotationAndSpeaker(t *testing.T) {
	got, keep := CleanLine("(door creaks) JOHN: Get out!", aggressive(t))
	if !keep {
		t.Fatal("line should survive")
	}
	if got != "Get out!" {
		t.Fatalf("got %q, want %q", got, "Get out!")
	}
}

func TestCleanLineDropsMusicOnly(t *testing.T) {
	if _, keep := CleanLine("♪ ♪", aggressive(t)); keep {
		t.Fatal("music-only line must be dropped")
	}
	if _, keep := CleanLine("♪♫♬", aggressive(t)); keep {
		t.Fatal("music-only line must be dropped")
	}
	if got, keep := CleanLine("♪ La la la ♪", aggressive(t)); !keep || got != "♪ La la la ♪" {
		t.Fatalf("sung lyric must survive, got %q keep=%v", got, keep)
	}
}

func TestCleanLineMusicRuleDisabled(t *testing.T) {
	cfg := aggressive(t)
	cfg.RemoveIfOnlyMusicSymbols = false
	if got, keep := CleanLine("♪ ♪", cfg); !keep || got != "♪ ♪" {
		t.Fatalf("music line should survive with rule off, got %q keep=%v", got, keep)
	}
}

func TestCleanLineSpeakerUppercaseGate(t *testing.T) {
	cfg := aggressive(t)

	if got, _ := CleanLine("MARÍA: Hola", cfg); got != "Hola" {
		t.Fatalf("accented uppercase speaker should be stripped, got %q", got)
	}
	if got, _ := CleanLine("John: hello", cfg); got != "John: hello" {
		t.Fatalf("mixed-case speaker must stay with uppercase gate on, got %q", got)
	}

	cfg.ColonOnlyIfUppercase = false
	if got, _ := CleanLine("John: hello", cfg); got != "hello" {
		t.Fatalf("mixed-case speaker should be stripped with gate off, got %q", got)
	}
}

func TestCleanLineSpeakerNeedsTwoCharsAndText(t *testing.T) {
	cfg := aggressive(t)
	if got, _ := CleanLine("A: hi", cfg); got != "A: hi" {
		t.Fatalf("single-character prefix must not match, got %q", got)
	}
	if got, _ := CleanLine("JOHN:", cfg); got != "JOHN:" {
		t.Fatalf("colon with no trailing text must not match, got %q", got)
	}
}

func TestCleanLineSpeakerRuleDisabled(t *testing.T) {
	cfg := aggressive(t)
	cfg.RemoveTextBeforeColon = false
	if got, _ := CleanLine("JOHN: Get out!", cfg); got != "JOHN: Get out!" {
		t.Fatalf("speaker must stay with rule off, got %q", got)
	}
}

func TestCleanLineInlineBrackets(t *testing.T) {
	cfg := aggressive(t)
	if got, _ := CleanLine("Hello [sniffs] there (softly) friend", cfg); got != "Hello there friend" {
		t.Fatalf("inline brackets should vanish, got %q", got)
	}

	cfg.RemoveBetweenSquare = false
	if got, _ := CleanLine("Hello [sniffs] there", cfg); got != "Hello [sniffs] there" {
		t.Fatalf("square removal disabled, got %q", got)
	}
}

func TestCleanLineStandaloneBracketDrop(t *testing.T) {
	cfg, _ := Preset("conservative")

	if _, keep := CleanLine("[wind howling]", cfg); keep {
		t.Fatal("whole-line square block must be dropped")
	}
	if _, keep := CleanLine("  (sighs)  ", cfg); keep {
		t.Fatal("whole-line paren block must be dropped")
	}
	// Inline removal is suspended in separate-line mode.
	if got, keep := CleanLine("Hello [sniffs] there", cfg); !keep || got != "Hello [sniffs] there" {
		t.Fatalf("inline bracket must survive in separate-line mode, got %q keep=%v", got, keep)
	}
}

func TestCleanLineWhitespaceNormalization(t *testing.T) {
	if got, _ := CleanLine("  too   many\tspaces  ", aggressive(t)); got != "too many spaces" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanLinePreservesMarkupThroughRules(t *testing.T) {
	cfg := aggressive(t)
	cases := []struct {
		in   string
		want string
	}{
		{"Hello<br/>world [sniffs]", "Hello<br/>world"},
		{`Hi\Nthere (laughs)`, `Hi\Nthere`},
		{`{\an8}JOHN: HI`, `{\an8}JOHN: HI`}, // sentinel blocks the speaker match
		{"<i>MOM:</i> Dinner!", "<i>MOM:</i> Dinner!"},
	}
	for _, tc := range cases {
		got, keep := CleanLine(tc.in, cfg)
		if !keep {
			t.Fatalf("CleanLine(%q) dropped unexpectedly", tc.in)
		}
		if got != tc.want {
			t.Fatalf("CleanLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanLinesDropsEmptiedLines(t *testing.T) {
	lines := []string{"(clears throat)", "JOHN: Fine.", "♪ ♪"}
	got := CleanLines(lines, aggressive(t))
	if len(got) != 1 || got[0] != "Fine." {
		t.Fatalf("got %v", got)
	}
}

func TestCleanLineIdempotent(t *testing.T) {
	cfg := aggressive(t)
	inputs := []string{
		"(door creaks) JOHN: Get out!",
		"Hello [sniffs] there",
		"<i>HELLO</i> WORLD",
		"plain line",
	}
	for _, in := range inputs {
		once, keep := CleanLine(in, cfg)
		if !keep {
			continue
		}
		twice, keep := CleanLine(once, cfg)
		if !keep || twice != once {
			t.Fatalf("CleanLine not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
