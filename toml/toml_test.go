package toml

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_ConfigShape(t *testing.T) {
	input := []byte(`
# splash config
art = "logo.txt" # trailing comment

[scroll]
gap = 10
frame_delay_ms = 100
loop_delay_ms = 2_000

[window]
hide_cursor = true
color = "green"

[chime]
enabled = false
freq_hz = 880.0
`)

	m, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m["art"] != "logo.txt" {
		t.Errorf("art = %v, want %q", m["art"], "logo.txt")
	}

	scroll, ok := m["scroll"].(map[string]any)
	if !ok {
		t.Fatalf("scroll is %T, want table", m["scroll"])
	}
	if scroll["gap"] != int64(10) {
		t.Errorf("scroll.gap = %v, want 10", scroll["gap"])
	}
	if scroll["loop_delay_ms"] != int64(2000) {
		t.Errorf("scroll.loop_delay_ms = %v, want 2000 (underscores)", scroll["loop_delay_ms"])
	}

	window := m["window"].(map[string]any)
	if window["hide_cursor"] != true {
		t.Errorf("window.hide_cursor = %v, want true", window["hide_cursor"])
	}

	chime := m["chime"].(map[string]any)
	if chime["freq_hz"] != 880.0 {
		t.Errorf("chime.freq_hz = %v, want 880.0", chime["freq_hz"])
	}
}

func TestParse_DottedTables(t *testing.T) {
	m, err := Parse([]byte("[a.b]\nx = 1\n[a.c]\ny = 2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	a := m["a"].(map[string]any)
	if a["b"].(map[string]any)["x"] != int64(1) {
		t.Errorf("a.b.x = %v, want 1", a["b"].(map[string]any)["x"])
	}
	if a["c"].(map[string]any)["y"] != int64(2) {
		t.Errorf("a.c.y = %v, want 2", a["c"].(map[string]any)["y"])
	}
}

func TestParse_StringsWithHashAndEscapes(t *testing.T) {
	m, err := Parse([]byte(`s = "a # not a comment \"quoted\""` + "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := `a # not a comment "quoted"`
	if m["s"] != want {
		t.Errorf("s = %q, want %q", m["s"], want)
	}
}

func TestParse_Arrays(t *testing.T) {
	m, err := Parse([]byte(`names = ["a", "b,c"]` + "\n" + `nums = [1, 2, 3]` + "\n" + `empty = []` + "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := m["names"].([]any); !reflect.DeepEqual(got, []any{"a", "b,c"}) {
		t.Errorf("names = %v", got)
	}
	if got := m["nums"].([]any); !reflect.DeepEqual(got, []any{int64(1), int64(2), int64(3)}) {
		t.Errorf("nums = %v", got)
	}
	if got := m["empty"].([]any); len(got) != 0 {
		t.Errorf("empty = %v, want []", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing equals", "gap 10"},
		{"malformed header", "[scroll"},
		{"array of tables unsupported", "[[servers]]"},
		{"duplicate key", "a = 1\na = 2"},
		{"unterminated string", `s = "abc`},
		{"trailing junk after string", `s = "abc" def`},
		{"garbage value", "a = @@"},
		{"value then table of same name", "a = 1\n[a]\nb = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestUnmarshal_Struct(t *testing.T) {
	input := []byte(`
art = "banner.txt"

[scroll]
gap = 4
frame_delay_ms = 50

[window]
hide_cursor = true
`)

	type Scroll struct {
		Gap          *int `toml:"gap"`
		FrameDelayMs *int `toml:"frame_delay_ms"`
		LoopDelayMs  *int `toml:"loop_delay_ms"`
	}
	type Window struct {
		HideCursor *bool `toml:"hide_cursor"`
	}
	type Config struct {
		Art    string `toml:"art"`
		Scroll Scroll `toml:"scroll"`
		Window Window `toml:"window"`
	}

	var cfg Config
	if err := Unmarshal(input, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Art != "banner.txt" {
		t.Errorf("Art = %q", cfg.Art)
	}
	if cfg.Scroll.Gap == nil || *cfg.Scroll.Gap != 4 {
		t.Errorf("Scroll.Gap = %v, want 4", cfg.Scroll.Gap)
	}
	if cfg.Scroll.FrameDelayMs == nil || *cfg.Scroll.FrameDelayMs != 50 {
		t.Errorf("Scroll.FrameDelayMs = %v, want 50", cfg.Scroll.FrameDelayMs)
	}
	if cfg.Scroll.LoopDelayMs != nil {
		t.Errorf("Scroll.LoopDelayMs = %v, want nil (unset)", *cfg.Scroll.LoopDelayMs)
	}
	if cfg.Window.HideCursor == nil || !*cfg.Window.HideCursor {
		t.Errorf("Window.HideCursor = %v, want true", cfg.Window.HideCursor)
	}
}

func TestUnmarshal_FieldNameFallback(t *testing.T) {
	// Untagged fields match their lowercased name.
	var out struct {
		Title string
		Count int
	}
	if err := Unmarshal([]byte("title = \"x\"\ncount = 3\n"), &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.Title != "x" || out.Count != 3 {
		t.Errorf("got %+v", out)
	}
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	var out struct {
		Gap int `toml:"gap"`
	}
	err := Unmarshal([]byte(`gap = "ten"`+"\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "gap") {
		t.Errorf("error = %v, want type error naming the field", err)
	}
}

func TestDecode_RequiresPointer(t *testing.T) {
	var out struct{}
	if err := Decode(map[string]any{}, out); err == nil {
		t.Error("Decode of non-pointer succeeded, want error")
	}
}
