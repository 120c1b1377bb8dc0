package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"duty-roster-backend/internal/config"
	"duty-roster-backend/internal/database"
	"duty-roster-backend/internal/docstore"
	"duty-roster-backend/internal/repository"
	"duty-roster-backend/internal/roster"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type StaffData struct {
	ID       string `yaml:"id,omitempty"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Color    string `yaml:"color,omitempty"`
}

// File structures
type StaffFile struct {
	Staff []StaffData `yaml:"staff"`
}

type AnnotationsFile struct {
	Annotations map[string]string `yaml:"annotations"`
}

func main() {
	log.Println("🚀 Loading initial roster data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, cfg.RosterKey, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial roster data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles merges seed staff and annotations into the stored
// roster document. Staff already present by name and dates already annotated
// are left alone, so the loader can be rerun safely.
func loadDataFromYAMLFiles(db *gorm.DB, key, dataDir string) error {
	staff, err := loadStaff(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}
	annotations, err := loadAnnotations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load annotations: %w", err)
	}

	store := docstore.NewStore(repository.NewRosterDocumentRepository(db), docstore.NewLocalNotifier())
	coordinator := roster.NewCoordinator(store, key, roster.WithSettleDelay(0))
	if err := coordinator.Start(context.Background()); err != nil {
		return err
	}
	defer coordinator.Stop()

	var staffCreated, staffSkipped, notesCreated int
	var seedErr error
	coordinator.Mutate(context.Background(), func(st roster.State) roster.Field {
		var changed roster.Field

		known := make(map[string]bool)
		for _, m := range st.Staff.List() {
			known[strings.ToLower(m.Name)] = true
		}
		for _, data := range staff {
			member, err := toStaffMember(data, st.Staff)
			if err != nil {
				seedErr = err
				return 0
			}
			if known[strings.ToLower(member.Name)] || !st.Staff.Add(member) {
				staffSkipped++
				continue
			}
			known[strings.ToLower(member.Name)] = true
			staffCreated++
			changed |= roster.FieldStaff
		}

		for date, text := range annotations {
			dk, err := roster.ParseDateKey(date)
			if err != nil {
				seedErr = fmt.Errorf("annotation %q: %w", date, err)
				return 0
			}
			if _, ok := st.Annotations.Override(dk); ok {
				continue
			}
			st.Annotations.SetNote(dk, text)
			notesCreated++
			changed |= roster.FieldAnnotations
		}
		return changed
	})
	if seedErr != nil {
		return seedErr
	}

	if report := coordinator.Status(); report.Status == roster.StatusError {
		return fmt.Errorf("failed to write roster document: %s", report.Error)
	}

	log.Printf("📋 Staff: %d created, %d skipped (already present)", staffCreated, staffSkipped)
	log.Printf("📝 Annotations: %d created", notesCreated)
	return nil
}

func toStaffMember(data StaffData, dir *roster.Directory) (roster.StaffMember, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return roster.StaffMember{}, fmt.Errorf("staff entry without a name")
	}
	category := roster.Category(data.Category)
	if !category.IsValid() {
		return roster.StaffMember{}, fmt.Errorf("staff %q: unknown category %q", name, data.Category)
	}

	id := data.ID
	if id == "" {
		id = uuid.NewString()
	}
	color := data.Color
	if color == "" {
		color = dir.NextColor()
	}
	return roster.StaffMember{ID: roster.StaffID(id), Name: name, Category: category, Color: color}, nil
}

func loadStaff(dataDir string) ([]StaffData, error) {
	var all []StaffData
	err := walkYAML(dataDir, "staff", func(data []byte) error {
		var file StaffFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Staff...)
		return nil
	})
	return all, err
}

func loadAnnotations(dataDir string) (map[string]string, error) {
	all := make(map[string]string)
	err := walkYAML(dataDir, "annotations", func(data []byte) error {
		var file AnnotationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		for date, text := range file.Annotations {
			all[date] = text
		}
		return nil
	})
	return all, err
}

// walkYAML calls fn with the contents of every .yaml file under dataDir whose path contains name
func walkYAML(dataDir, name string, fn func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(path, name) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}
