package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	def := DefaultSnakeConfig()

	if cfg.Board != def.Board {
		t.Errorf("Board mismatch: %q vs %q", cfg.Board, def.Board)
	}
	if cfg.Speed != def.Speed {
		t.Errorf("Speed mismatch: %+v vs %+v", cfg.Speed, def.Speed)
	}
	if cfg.Food != def.Food {
		t.Errorf("Food mismatch: %+v vs %+v", cfg.Food, def.Food)
	}
	for name, b := range def.Boards {
		if cfg.Boards[name] != b {
			t.Errorf("Board %s mismatch: %+v vs %+v", name, cfg.Boards[name], b)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board: compact\nspeed:\n  initial_ms: 120\nfood:\n  policy: anywhere\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Board != "compact" {
		t.Errorf("Expected board compact, got %q", cfg.Board)
	}
	if cfg.Speed.InitialMS != 120 {
		t.Errorf("Expected initial 120, got %d", cfg.Speed.InitialMS)
	}
	// Keys missing from the file keep their defaults
	if cfg.Speed.StepMS != 2 || cfg.Speed.FloorMS != 50 {
		t.Errorf("Expected default step/floor, got %+v", cfg.Speed)
	}
	if _, ok := cfg.Boards["classic"]; !ok {
		t.Error("Default boards should survive a partial file")
	}
	if cfg.Food.Policy != "anywhere" {
		t.Errorf("Expected anywhere policy, got %q", cfg.Food.Policy)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Error("Malformed custom config should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"named default board", func(c *SnakeConfig) { c.Board = "classic" }, false},
		{"unknown default board", func(c *SnakeConfig) { c.Board = "huge" }, true},
		{"no boards", func(c *SnakeConfig) { c.Boards = nil }, true},
		{"reserved name", func(c *SnakeConfig) { c.Boards[BoardAuto] = BoardConfig{Columns: 5, Rows: 5, CellSize: 5} }, true},
		{"zero columns", func(c *SnakeConfig) { c.Boards["classic"] = BoardConfig{Rows: 5, CellSize: 5} }, true},
		{"zero cell size", func(c *SnakeConfig) { c.Boards["classic"] = BoardConfig{Columns: 5, Rows: 5} }, true},
		{"zero initial", func(c *SnakeConfig) { c.Speed.InitialMS = 0 }, true},
		{"negative step", func(c *SnakeConfig) { c.Speed.StepMS = -1 }, true},
		{"zero step", func(c *SnakeConfig) { c.Speed.StepMS = 0 }, false},
		{"floor above initial", func(c *SnakeConfig) { c.Speed.FloorMS = 200 }, true},
		{"anywhere policy", func(c *SnakeConfig) { c.Food.Policy = "anywhere" }, false},
		{"unknown policy", func(c *SnakeConfig) { c.Food.Policy = "nowhere" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBoard, "compact")
	t.Setenv(EnvInitialMS, "80")
	t.Setenv(EnvStepMS, "")
	t.Setenv(EnvFloorMS, "40")
	t.Setenv(EnvFoodPolicy, "anywhere")

	cfg := DefaultSnakeConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.Board != "compact" {
		t.Errorf("Expected board compact, got %q", cfg.Board)
	}
	if cfg.Speed != (SpeedConfig{InitialMS: 80, StepMS: 2, FloorMS: 40}) {
		t.Errorf("Unexpected speed %+v", cfg.Speed)
	}
	if cfg.Food.Policy != "anywhere" {
		t.Errorf("Expected anywhere, got %q", cfg.Food.Policy)
	}
}

func TestApplyEnvInvalidNumber(t *testing.T) {
	t.Setenv(EnvStepMS, "fast")

	cfg := DefaultSnakeConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("Expected error for non-numeric step")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Missing env file should be ignored: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SNAKE_FLOOR_MS=60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvFloorMS, "")
	os.Unsetenv(EnvFloorMS)

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if got := os.Getenv(EnvFloorMS); got != "60" {
		t.Errorf("Expected SNAKE_FLOOR_MS=60, got %q", got)
	}
}

func TestBoardNames(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Boards["tiny"] = BoardConfig{Columns: 8, Rows: 8, CellSize: 10}
	cfg.Boards["alt"] = BoardConfig{Columns: 18, Rows: 18, CellSize: 30}

	got := cfg.BoardNames()
	want := []string{"classic", "alt", "compact", "tiny"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("BoardNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveBoard(t *testing.T) {
	cfg := DefaultSnakeConfig()
	fitsWithin := func(cols int) func(snake.Grid) bool {
		return func(g snake.Grid) bool { return g.Columns <= cols }
	}

	tests := []struct {
		name      string
		requested string
		fits      func(snake.Grid) bool
		want      string
		wantErr   bool
	}{
		{"explicit classic", "classic", fitsWithin(0), "classic", false},
		{"explicit compact", "compact", nil, "compact", false},
		{"auto large terminal", BoardAuto, fitsWithin(100), "classic", false},
		{"auto small terminal", BoardAuto, fitsWithin(19), "compact", false},
		{"auto nothing fits", BoardAuto, fitsWithin(5), "compact", false},
		{"empty uses default", "", fitsWithin(100), "classic", false},
		{"unknown", "huge", nil, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, b, err := cfg.ResolveBoard(tc.requested, tc.fits)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ResolveBoard() error = %v, wantErr %v", err, tc.wantErr)
			}
			if name != tc.want {
				t.Errorf("ResolveBoard() = %q, want %q", name, tc.want)
			}
			if err == nil && b != cfg.Boards[name] {
				t.Errorf("ResolveBoard() board %+v does not match preset %+v", b, cfg.Boards[name])
			}
		})
	}
}

func TestSettings(t *testing.T) {
	cfg := DefaultSnakeConfig()
	s, err := cfg.Settings("compact", 99)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s.Grid != (snake.Grid{CellSize: 20, Columns: 18, Rows: 18}) {
		t.Errorf("Unexpected grid %+v", s.Grid)
	}
	if s.Speed != snake.DefaultSpeed() {
		t.Errorf("Unexpected speed %+v", s.Speed)
	}
	if s.Food != snake.FoodFree || s.Seed != 99 {
		t.Errorf("Unexpected food/seed %s/%d", s.Food, s.Seed)
	}

	if _, err := cfg.Settings("huge", 0); err == nil {
		t.Error("Unknown board should fail")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Speed.InitialMS = 90

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := parseSnake(data)
	if err != nil {
		t.Fatalf("parseSnake: %v", err)
	}
	if got.Speed.InitialMS != 90 {
		t.Errorf("Expected initial 90, got %d", got.Speed.InitialMS)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   SpeedConfig
	}{
		{DifficultyEasy, SpeedConfig{InitialMS: 150, StepMS: 1, FloorMS: 75}},
		{DifficultyNormal, SpeedConfig{InitialMS: 100, StepMS: 2, FloorMS: 50}},
		{DifficultyHard, SpeedConfig{InitialMS: 75, StepMS: 4, FloorMS: 37}},
		{DifficultyFixed, SpeedConfig{InitialMS: 100, StepMS: 0, FloorMS: 100}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Speed != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, cfg.Speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Preset should keep config valid: %v", err)
			}
		})
	}
}

func TestFixedPresetHoldsSpeed(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	sp := cfg.Speed.Speed()

	if sp.Initial != 100*time.Millisecond || sp.Floor != sp.Initial {
		t.Errorf("Fixed preset should pin the interval, got %+v", sp)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
