package genetic_queens

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// Persistence is the run archive: every finished run can be recorded in a
// SQLite database and queried back later.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var params strings.Builder
	for i, prag := range config.SQLitePragmas {
		if i > 0 {
			params.WriteRune('&')
		}
		params.WriteString(fmt.Sprintf("_pragma=%s", prag))
	}

	for _, opt := range config.SQLiteOptions {
		if params.Len() > 0 {
			params.WriteRune('&')
		}
		params.WriteString(opt)
	}

	var dsn strings.Builder
	dsn.WriteString(filepath.Join(config.Path, config.Name))
	if params.Len() > 0 {
		dsn.WriteRune('?')
		dsn.WriteString(params.String())
	}

	db, err := gorm.Open(sqlite.Open(dsn.String()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(&Run{})
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// SaveRun records one finished run.
func (p *Persistence) SaveRun(run *Run) error {
	if run == nil {
		return fmt.Errorf("run cannot be nil")
	}

	if result := p.DB.Create(run); result.Error != nil {
		return fmt.Errorf("Failed to persist run: %w", result.Error)
	}

	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (p *Persistence) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	result := p.DB.Order("id desc").Limit(limit).Find(&runs)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to query runs: %w", result.Error)
	}
	return runs, nil
}

// BestRun returns the highest-fitness run recorded for a board size, or
// gorm.ErrRecordNotFound when the archive has none.
func (p *Persistence) BestRun(boardSize int) (*Run, error) {
	var run Run
	result := p.DB.Where("board_size = ?", boardSize).
		Order("valid_queens desc, iterations asc").
		First(&run)
	if result.Error != nil {
		return nil, result.Error
	}
	return &run, nil
}
