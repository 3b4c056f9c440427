package database

import (
	"log"

	"hero_seguros/internal/adapter/persistence/sqlite"
)

// OpenSQLite opens the SQLite store at path and brings its schema up to date.
func OpenSQLite(path string) (*sqlite.Store, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		log.Printf("[storage][sqlite] open failed path=%s err=%v", path, err)
		return nil, err
	}
	log.Printf("[storage][sqlite] store ready path=%s", store.Path())
	return store, nil
}
