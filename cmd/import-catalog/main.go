package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	"musicschool/internal/catalog"
	"musicschool/pkg/database"
)

func main() {
	var (
		in     = flag.String("in", "data/music_courses.json", "input catalog (.json, .yaml or .csv)")
		dbPath = flag.String("db", "", "catalog database path (default $MUSICSCHOOL_DB_PATH or ~/.musicschool/catalog.db)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := database.DefaultConfig()
	if *dbPath != "" {
		cfg.Path = *dbPath
	}
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	n, err := importCatalog(ctx, db, *in)
	if err != nil {
		log.Fatalf("import catalog failed: %v", err)
	}
	log.Printf("imported %d courses from %s into %s", n, *in, cfg.Path)
}

// importCatalog validates the whole file before writing anything.
func importCatalog(ctx context.Context, db *sql.DB, path string) (int, error) {
	courses, err := catalog.LoadFile(path)
	if err != nil {
		return 0, err
	}
	// the courses table requires a slug; CSV exports often omit it
	courses = catalog.FillSlugs(courses)
	if err := catalog.Validate(courses); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := catalog.NewRepo(db).Upsert(ctx, courses); err != nil {
		return 0, err
	}
	return len(courses), nil
}
