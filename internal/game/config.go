package game

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/overworld/internal/overworld"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible caves, NPC
	// decisions and encounters. A seed of 0 means a random seed will be
	// generated.
	Seed          int64
	NpcMoveChance float64
	// WorldFile replaces the embedded world bundle when set.
	WorldFile string
	Noclip    bool
	// SpectateAddr enables the websocket spectator stream, e.g. ":8080".
	SpectateAddr string
	FrameRate    int
	PlayerName   string
	LogFile      string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		NpcMoveChance: overworld.DefaultNpcMoveChance,
		FrameRate:     60,
		PlayerName:    "Red",
		LogFile:       "overworld.log",
	}
}

// ConfigFromEnv starts from DefaultConfig and applies OVERWORLD_*
// environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookupEnv("OVERWORLD_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("OVERWORLD_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookupEnv("OVERWORLD_NPC_MOVE_CHANCE"); ok {
		chance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("OVERWORLD_NPC_MOVE_CHANCE: %w", err)
		}
		cfg.NpcMoveChance = chance
	}
	if v, ok := lookupEnv("OVERWORLD_NOCLIP"); ok {
		noclip, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("OVERWORLD_NOCLIP: %w", err)
		}
		cfg.Noclip = noclip
	}
	if v, ok := lookupEnv("OVERWORLD_FPS"); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("OVERWORLD_FPS: %w", err)
		}
		cfg.FrameRate = fps
	}
	if v, ok := lookupEnv("OVERWORLD_WORLD_FILE"); ok {
		cfg.WorldFile = v
	}
	if v, ok := lookupEnv("OVERWORLD_SPECTATE_ADDR"); ok {
		cfg.SpectateAddr = v
	}
	if v, ok := lookupEnv("OVERWORLD_PLAYER_NAME"); ok {
		cfg.PlayerName = v
	}
	if v, ok := lookupEnv("OVERWORLD_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return cfg, cfg.Validate()
}

// RegisterFlags binds command-line flags that override the current values.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one)")
	fs.Float64Var(&c.NpcMoveChance, "npc-move-chance", c.NpcMoveChance, "chance an idle NPC acts each decision tick")
	fs.StringVar(&c.WorldFile, "world", c.WorldFile, "world bundle JSON file (default: embedded)")
	fs.BoolVar(&c.Noclip, "noclip", c.Noclip, "walk through obstacles")
	fs.StringVar(&c.SpectateAddr, "spectate", c.SpectateAddr, "address to serve the spectator websocket on")
	fs.IntVar(&c.FrameRate, "fps", c.FrameRate, "simulation frames per second")
	fs.StringVar(&c.PlayerName, "name", c.PlayerName, "player name")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file path")
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	if c.NpcMoveChance < 0 || c.NpcMoveChance > 1 {
		return fmt.Errorf("npc move chance must be within [0,1], got %g", c.NpcMoveChance)
	}
	return nil
}

// Options converts the tunables the overworld manager needs.
func (c Config) Options() overworld.Options {
	return overworld.Options{
		NpcMoveChance: c.NpcMoveChance,
		Seed:          c.Seed,
	}
}

// lookupEnv treats an empty variable as unset.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}
