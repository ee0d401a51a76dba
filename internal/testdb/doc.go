//go:build integration

// Package testdb provides utilities for PostgreSQL integration tests.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured and bootstraps the schema, then run inside
// WithTx so every change is rolled back when the test finishes:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	    // ...
//	})
//
// Environment variables, first non-empty wins: DATABASE_URL, TASKHUB_TEST_DB_URL.
package testdb
