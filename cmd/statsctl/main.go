// cmd/statsctl/main.go
//
// statsctl は学習者の統計を直接操作する管理用コマンドです。
//
//	statsctl migrate
//	statsctl show   --learner <uuid>
//	statsctl reset  --learner <uuid>
//	statsctl import --learner <uuid> --file words.xlsx
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"go_5_memory_game/internal/catalog"
	"go_5_memory_game/internal/config"
	"go_5_memory_game/internal/game"
	"go_5_memory_game/internal/model"
	"go_5_memory_game/internal/repository"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]

	flags := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	configDir := flags.String("config", "configs", "directory containing config.yaml")
	learner := flags.String("learner", "", "learner UUID")
	file := flags.String("file", "", "manifest to import (.json, .csv, .xlsx)")
	asJSON := flags.Bool("json", false, "print the raw snapshot")
	_ = flags.Parse(os.Args[2:])

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configDir); err != nil {
		fail("load config", err)
	}
	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		fail("connect database", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		fail("migrate", err)
	}

	ctx := context.Background()
	repo := repository.NewGormStatisticsRepository()

	switch cmd {
	case "migrate":
		fmt.Println("schema is up to date")
	case "show":
		err = show(ctx, db, repo, parseLearner(*learner), *asJSON)
	case "reset":
		err = repo.Delete(ctx, db, parseLearner(*learner))
		if errors.Is(err, model.ErrNotFound) {
			fmt.Println("nothing stored")
			err = nil
		}
	case "import":
		err = importManifest(ctx, db, repo, parseLearner(*learner), *file)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(cmd, err)
	}
}

func show(ctx context.Context, db *gorm.DB, repo repository.StatisticsRepository, learnerID uuid.UUID, asJSON bool) error {
	snapshot, err := repo.FindByLearner(ctx, db, learnerID)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tIMAGE\tCORRECT\tINCORRECT\tPRIORITY")
	for _, w := range snapshot.Words {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\n", w.Label, w.ImageRef, w.CorrectCount, w.IncorrectCount, game.Priority(w))
	}
	return tw.Flush()
}

// importManifest adds the manifest's words to the learner's pool without touching existing counts.
func importManifest(ctx context.Context, db *gorm.DB, repo repository.StatisticsRepository, learnerID uuid.UUID, path string) error {
	if path == "" {
		return fmt.Errorf("--file is required")
	}
	entries, err := (&catalog.File{Path: path}).Entries(ctx)
	if err != nil {
		return err
	}

	stored, err := repo.FindByLearner(ctx, db, learnerID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	before := 0
	if stored != nil {
		before = len(stored.Words)
	}

	pool := game.InitializePool(stored, entries)
	if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.Save(ctx, tx, learnerID, pool.Snapshot())
	}); err != nil {
		return err
	}
	fmt.Printf("imported %d new words (%d total)\n", pool.Len()-before, pool.Len())
	return nil
}

func parseLearner(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		fail("--learner", fmt.Errorf("must be a UUID: %w", err))
	}
	return id
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: statsctl <migrate|show|reset|import> [--config dir] [--learner uuid] [--file path] [--json]")
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "statsctl: %s: %v\n", what, err)
	os.Exit(1)
}
