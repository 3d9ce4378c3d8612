package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// isolate points HOME at an empty directory so a real user config is never read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, want embedded", cfg.Source)
	}

	want := Default()
	want.Source = cfg.Source
	if cfg != want {
		t.Errorf("embedded defaults = %+v\nwant %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	writeFile(t, path, `
players:
  a:
    name: Alice
    color: "#0f0"
game:
  starter: b
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players.A.Name != "Alice" || cfg.Players.A.Color != "#00ff00" {
		t.Errorf("player A = %+v", cfg.Players.A)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Players.B != Default().Players.B {
		t.Errorf("player B = %+v, want default", cfg.Players.B)
	}
	if cfg.Game.StarterPlayer() != connect4.PlayerB {
		t.Errorf("starter = %v, want B", cfg.Game.StarterPlayer())
	}
	if !cfg.Game.AlternateStarter {
		t.Error("alternate_starter default lost")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q", cfg.Source)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".connect4", "config.yaml"), "players:\n  b:\n    color: blue\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players.B.Color != "#1e90ff" {
		t.Errorf("player B color = %q", cfg.Players.B.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "players: [", "failed to parse"},
		{"bad color", "players:\n  a:\n    color: chartreuse-ish\n", "unknown color"},
		{"bad hex", "players:\n  a:\n    color: \"#12345\"\n", "invalid hex"},
		{"bad starter", "game:\n  starter: c\n", "invalid starter"},
		{"long disc", "game:\n  disc: \"ab\"\n", "single character"},
		{"long name", "players:\n  a:\n    name: abcdefghijklmnopq\n", "longer than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"red", "#ff0000", false},
		{"Yellow", "#ffff00", false},
		{"#F00", "#ff0000", false},
		{"#1E90FF", "#1e90ff", false},
		{"202", "202", false},
		{"0", "0", false},
		{"256", "", true},
		{"-1", "", true},
		{"#ggg", "", true},
		{"#ffff", "", true},
		{"", "", true},
		{"teal-ish", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteIndex(t *testing.T) {
	if got := PaletteIndex("#ffff00"); got != 1 {
		t.Errorf("PaletteIndex(yellow hex) = %d", got)
	}
	if got := PaletteIndex("magenta"); got < 0 {
		t.Error("PaletteIndex(magenta) not found")
	}
	if got := PaletteIndex("#123456"); got != -1 {
		t.Errorf("PaletteIndex(unknown) = %d", got)
	}
}

func TestParseStarter(t *testing.T) {
	tests := []struct {
		in   string
		want connect4.Player
	}{
		{"a", connect4.PlayerA},
		{"B", connect4.PlayerB},
		{" 2 ", connect4.PlayerB},
		{"1", connect4.PlayerA},
	}
	for _, tt := range tests {
		got, err := ParseStarter(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStarter(%q) = %v, %v", tt.in, got, err)
		}
		if back, _ := ParseStarter(StarterName(got)); back != got {
			t.Errorf("StarterName(%v) does not round trip", got)
		}
	}
	if _, err := ParseStarter("x"); err == nil {
		t.Error("ParseStarter(x) should fail")
	}
}

func TestDiscRune(t *testing.T) {
	if got := (GameConfig{}).DiscRune(); got != connect4.DefaultDisc {
		t.Errorf("empty disc = %q", got)
	}
	if got := (GameConfig{Disc: "o"}).DiscRune(); got != 'o' {
		t.Errorf("disc = %q", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONNECT4_PLAYER_A_COLOR", "cyan")
	t.Setenv("CONNECT4_PLAYER_B_COLOR", "93")
	t.Setenv("CONNECT4_DB", "/tmp/results.db")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if e.DB != "/tmp/results.db" {
		t.Errorf("DB = %q", e.DB)
	}

	cfg := Default()
	if err := e.Apply(&cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Players.A.Color != "#00ffff" || cfg.Players.B.Color != "93" {
		t.Errorf("colors = %q, %q", cfg.Players.A.Color, cfg.Players.B.Color)
	}

	bad := Env{PlayerAColor: "nope"}
	if err := bad.Apply(&cfg); err == nil {
		t.Error("invalid env color should fail validation")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Players.A.Name = "Alice"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "source") {
		t.Error("Source leaked into YAML")
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got.Source = cfg.Source
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
