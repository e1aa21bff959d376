package database

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestListMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"002_seed_data.sql":     {Data: []byte("INSERT INTO menu_items ...")},
		"001_create_tables.sql": {Data: []byte("CREATE TABLE users ...")},
		"embed.go":              {Data: []byte("package migrations")},
		"010_later.sql":         {Data: []byte("ALTER TABLE orders ...")},
	}

	files, err := listMigrationFiles(fsys)
	if err != nil {
		t.Fatalf("listMigrationFiles() error = %v", err)
	}

	want := []string{"001_create_tables.sql", "002_seed_data.sql", "010_later.sql"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("listMigrationFiles() = %v, want %v", files, want)
	}
}

func TestListMigrationFilesEmpty(t *testing.T) {
	files, err := listMigrationFiles(fstest.MapFS{})
	if err != nil {
		t.Fatalf("listMigrationFiles() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}
