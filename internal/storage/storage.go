package storage

import (
	"fmt"
	"os"
	"sync"

	"taskhive/internal/config"
	audit_logs_models "taskhive/internal/features/audit_logs/models"
	invites_models "taskhive/internal/features/invites/models"
	projects_models "taskhive/internal/features/projects/models"
	users_models "taskhive/internal/features/users/models"
	"taskhive/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	log = logger.GetLogger()

	db     *gorm.DB
	dbOnce sync.Once
)

// GetDb returns the shared database handle, opening the connection and
// running migrations on first use.
func GetDb() *gorm.DB {
	dbOnce.Do(func() {
		env := config.GetEnv()

		var dialector gorm.Dialector
		switch env.DatabaseDriver {
		case config.DatabaseDriverPostgres:
			dialector = postgres.Open(env.DatabaseDsn)
		case config.DatabaseDriverSqlite:
			dialector = sqlite.Open(env.DatabaseDsn)
		default:
			log.Error("unsupported database driver", "driver", env.DatabaseDriver)
			os.Exit(1)
		}

		gormConfig := &gorm.Config{
			TranslateError: true,
		}
		if env.IsTesting {
			gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
		}

		connection, err := gorm.Open(dialector, gormConfig)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if env.DatabaseDriver == config.DatabaseDriverSqlite {
			// The shared in-memory database lives as long as one
			// connection stays open. A single connection also removes
			// write contention under SQLite's coarse locking.
			sqlDb, err := connection.DB()
			if err != nil {
				log.Error("failed to access database connection pool", "error", err)
				os.Exit(1)
			}
			sqlDb.SetMaxOpenConns(1)
		}

		if err := runMigrations(connection); err != nil {
			log.Error("failed to run database migrations", "error", err)
			os.Exit(1)
		}

		db = connection
	})

	return db
}

func runMigrations(connection *gorm.DB) error {
	err := connection.AutoMigrate(
		&users_models.User{},
		&users_models.SecretKey{},
		&projects_models.Project{},
		&projects_models.ProjectMember{},
		&invites_models.ProjectInvite{},
		&audit_logs_models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// At most one open invite per (project, email) pair. Resolved
	// invites keep their rows for history, so the uniqueness applies
	// only to the pending status.
	err = connection.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_project_invites_pending
		 ON project_invites (project_id, email)
		 WHERE status = 'pending'`,
	).Error
	if err != nil {
		return fmt.Errorf("failed to create pending invite index: %w", err)
	}

	return nil
}

// Transaction runs fn inside a database transaction, committing when fn
// returns nil and rolling back otherwise.
func Transaction(fn func(tx *gorm.DB) error) error {
	return GetDb().Transaction(fn)
}
