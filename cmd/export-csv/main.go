package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"musicschool/internal/catalog"
	"musicschool/internal/sftpclient"
	"musicschool/pkg/database"
	"musicschool/pkg/models"
	"musicschool/pkg/utils"
)

func main() {
	var (
		out    = flag.String("out", "data/courses.csv", "output CSV path")
		src    = flag.String("catalog", "", "read from this catalog file instead of the database")
		upload = flag.Bool("sftp", false, "upload the CSV via SFTP (SFTP_* env)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	courses, err := loadCourses(ctx, *src)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	if err := writeCSV(*out, courses); err != nil {
		log.Fatalf("export courses failed: %v", err)
	}
	log.Printf("exported %d courses to %s", len(courses), *out)

	if *upload {
		cfg := utils.LoadSFTPConfig()
		err := sftpclient.UploadFile(ctx, sftpclient.Config{
			Host:                  cfg.Host,
			Port:                  cfg.Port,
			User:                  cfg.User,
			Pass:                  cfg.Pass,
			RemoteDir:             cfg.Dir,
			KnownHosts:            cfg.KnownHosts,
			InsecureIgnoreHostKey: cfg.InsecureIgnoreHostKey,
		}, *out, filepath.Base(*out))
		if err != nil {
			log.Fatalf("sftp upload failed: %v", err)
		}
		log.Printf("uploaded %s to %s:%s", *out, cfg.Host, cfg.Dir)
	}
}

func loadCourses(ctx context.Context, path string) ([]models.Course, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	cfg := database.DefaultConfig()
	cfg.ReadOnly = true
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return catalog.NewRepo(db).All(ctx)
}

func writeCSV(outPath string, courses []models.Course) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := catalog.WriteCSV(f, courses); err != nil {
		return err
	}
	return f.Close()
}
