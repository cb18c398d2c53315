package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gmuffiness/agentfloor/store"
)

// floorseed loads an organization document into the floor database, or
// writes the built-in demo floor when no file is given.

var (
	dbFlag   = flag.String("db", "agentfloor.db", "Path to the floor database")
	fileFlag = flag.String("file", "", "Organization JSON to import (default: built-in demo floor)")
	dumpFlag = flag.String("dump", "", "Dump the stored organization with this id to stdout and exit")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "floorseed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	db, err := store.Open(*dbFlag, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if *dumpFlag != "" {
		org, err := db.LoadOrganization(*dumpFlag)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(org)
	}

	org := store.SeedOrganization()
	if *fileFlag != "" {
		data, err := os.ReadFile(*fileFlag)
		if err != nil {
			return err
		}
		org, err = store.ImportJSON(data)
		if err != nil {
			return err
		}
	}

	if err := db.SaveOrganization(org); err != nil {
		return err
	}
	agents := 0
	for _, d := range org.Departments {
		agents += len(d.Agents)
	}
	fmt.Printf("stored organization %s (%d departments, %d agents) in %s\n",
		org.ID, len(org.Departments), agents, *dbFlag)
	return nil
}
