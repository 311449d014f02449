package bingo

import (
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

// SetupTestDatabase opens a sqlite database in a temporary file and runs the setup queries against it.
func SetupTestDatabase(t *testing.T, setupQueries ...string) *sqlx.DB {
	// Create a temp file so that the sqlite file is not populating random directories.
	f, err := os.CreateTemp("", "bingo-test-data")
	assert.NoError(t, err, "could not create database temp file")
	t.Cleanup(func() { _ = os.Remove(f.Name()) })

	db, err := sqlx.Connect("sqlite3", f.Name())
	assert.NoError(t, err, "could not connect to sqlite3")
	t.Cleanup(func() { _ = db.Close() })

	// Run the provided queries as a setup step.
	for _, query := range setupQueries {
		_, err = db.Exec(query)
		assert.NoError(t, err, "failed to run setup queries")
	}

	return db
}

// dummyPosts is the schema most executor tests run against.
var dummyPosts = []string{
	`CREATE TABLE dummy_posts (blog_id INTEGER PRIMARY KEY, blog_title TEXT)`,
	`INSERT INTO dummy_posts VALUES (1, 'a cool post')`,
	`INSERT INTO dummy_posts VALUES (2, 'another cool post')`,
	`INSERT INTO dummy_posts VALUES (3, 'dull')`,
}
