package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erp/erpapi/internal/app"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/logger"
	"github.com/erp/erpapi/internal/infrastructure/migration"
	"github.com/erp/erpapi/internal/infrastructure/persistence"
	"github.com/erp/erpapi/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	var (
		dir      string
		logLevel string
	)
	flag.StringVar(&dir, "dir", "migrations", "Directory new migrations are created in")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(config.LogConfig{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// commands that never touch the database
	switch command {
	case "create":
		if len(args) < 2 {
			log.Fatal("Migration name required. Usage: migrate create <name> [description]")
		}
		description := ""
		if len(args) > 2 {
			description = args[2]
		}
		mf, err := migration.CreateMigration(dir, args[1], description)
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.Uint("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
		return
	case "list":
		list, err := migration.ListMigrations(migrations.FS)
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		for _, m := range list {
			fmt.Printf("  %06d  %s\n", m.Version, m.Name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != "postgres" {
		log.Fatal("Versioned migrations require the postgres driver",
			zap.String("driver", cfg.Database.Driver))
	}

	if command == "up" {
		// entity tables first; the SQL migrations build on them
		gdb, err := persistence.NewDatabaseWithLogger(&cfg.Database,
			logger.NewGormLogger(log, cfg.Database.LogLevel, cfg.Database.SlowThreshold))
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := gdb.AutoMigrate(app.Models()...); err != nil {
			log.Fatal("Schema sync failed", zap.Error(err))
		}
		_ = gdb.Close()
		log.Info("Entity tables synchronized")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	m, err := migration.New(db, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		n, convErr := intArg(args, "steps <n>")
		if convErr != nil {
			log.Fatal("Invalid arguments", zap.Error(convErr))
		}
		err = m.Steps(n)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	case "force":
		v, convErr := intArg(args, "force <version>")
		if convErr != nil {
			log.Fatal("Invalid arguments", zap.Error(convErr))
		}
		err = m.Force(v)
	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}
}

func intArg(args []string, usage string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("usage: migrate %s", usage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", args[1])
	}
	return n, nil
}

func printUsage() {
	fmt.Fprint(os.Stderr, `ERP database migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Sync entity tables, then apply pending SQL migrations
  down                  Roll back all SQL migrations
  steps <n>             Apply n migrations (negative rolls back)
  version               Show the applied migration version
  force <version>       Mark a version as applied (clears a dirty state)
  create <name> [desc]  Create a new migration pair in -dir
  list                  List the embedded migrations

Flags:
  -dir string           Directory for new migrations (default "migrations")
  -log-level string     debug, info, warn or error (default "info")

The database is configured like the server: ENVIRONMENT plus DB_* / ERP_DATABASE_* variables.
`)
}
