// Command migrate applies or rolls back the embedded SQL migrations.
//
//	migrate up       apply every pending migration
//	migrate down     roll back the latest migration
//	migrate version  print the current schema version
package main

import (
	"flag"
	"fmt"
	"os"

	"orthocare-api/cmd/bootstrap"
	"orthocare-api/config"
	"orthocare-api/internal/infrastructure/database"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|version")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := bootstrap.SetupLogger("info")

	cfg, err := config.LoadToolConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	migrator, err := database.NewMigrator(database.URL(cfg.DB), log)
	if err != nil {
		log.Fatalf("Failed to open migrations: %v", err)
	}
	defer migrator.Close()

	switch flag.Arg(0) {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = migrator.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
