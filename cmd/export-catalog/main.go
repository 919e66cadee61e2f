package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"musicschool/internal/catalog"
	"musicschool/pkg/database"
)

func main() {
	var (
		outPath      = flag.String("out", "data/music_courses.json", "output path; .json, .yaml or .csv picks the format")
		dbPath       = flag.String("db", "", "catalog database path (default $MUSICSCHOOL_DB_PATH or ~/.musicschool/catalog.db)")
		onlyFeatured = flag.Bool("featured", false, "export featured courses only")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := database.DefaultConfig()
	if *dbPath != "" {
		cfg.Path = *dbPath
	}
	cfg.ReadOnly = true
	db := database.MustOpen(cfg)
	defer db.Close()

	n, err := export(ctx, catalog.NewRepo(db), *outPath, *onlyFeatured)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("exported %d courses to %s", n, *outPath)
}

func export(ctx context.Context, repo *catalog.Repo, outPath string, onlyFeatured bool) (int, error) {
	courses, err := repo.All(ctx)
	if err != nil {
		return 0, err
	}
	if onlyFeatured {
		courses = catalog.Featured(courses)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := catalog.Encode(f, courses, catalog.FormatOf(outPath)); err != nil {
		return 0, err
	}
	return len(courses), f.Close()
}
