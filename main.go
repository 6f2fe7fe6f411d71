// Dragboard - a drag-and-drop chessboard built with Ebitengine
package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/hailam/dragboard/internal/config"
	"github.com/hailam/dragboard/internal/obslog"
	"github.com/hailam/dragboard/internal/storage"
	"github.com/hailam/dragboard/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	if err := obslog.Init(obslog.OptionsFromEnv()); err != nil {
		log.Fatal(err)
	}
	logger := obslog.L().With(zap.String("session", uuid.NewString()))
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	store, prefs := openStorage(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	sound := prefs.SoundEnabled
	if cfg.Sound != nil {
		sound = *cfg.Sound
	}

	if err := ui.LoadFonts(); err != nil {
		logger.Warn("fonts unavailable, toasts disabled", zap.Error(err))
	}

	sprites, err := loadSprites(cfg)
	if err != nil {
		logger.Fatal("load sprites", zap.Error(err))
	}

	game := ui.NewGame(ui.Options{
		Sprites:    sprites,
		Audio:      ui.NewAudioManager(sound),
		ShowToasts: prefs.ShowToasts,
		Logger:     logger,
	})

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Dragboard")

	logger.Info("starting", zap.Bool("sound", sound), zap.String("sprite_dir", cfg.SpriteDir))
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop", zap.Error(err))
	}

	moves, undos, elapsed := game.Session()
	logger.Info("session finished", zap.Int("moves", moves), zap.Int("undos", undos), zap.Duration("elapsed", elapsed))

	if store != nil {
		if err := store.RecordSession(storage.SessionResult{PiecesMoved: moves, Undos: undos, Duration: elapsed}); err != nil {
			logger.Warn("record session", zap.Error(err))
		}
		if err := store.SavePreferences(prefs); err != nil {
			logger.Warn("save preferences", zap.Error(err))
		}
	}
}

// openStorage opens the preferences database. Failures fall back to defaults.
func openStorage(cfg *config.AppConfig, logger *zap.Logger) (*storage.Storage, *storage.UserPreferences) {
	if cfg.StorageDisabled {
		return nil, storage.DefaultPreferences()
	}

	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		logger.Warn("storage unavailable, using defaults", zap.Error(err))
		return nil, storage.DefaultPreferences()
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		logger.Warn("load preferences", zap.Error(err))
		prefs = storage.DefaultPreferences()
	}
	return store, prefs
}

func loadSprites(cfg *config.AppConfig) (*ui.SpriteSet, error) {
	if cfg.SpriteDir != "" {
		return ui.LoadSpriteDir(cfg.SpriteDir, ui.CellSize)
	}
	return ui.LoadEmbeddedSprites(ui.CellSize)
}
