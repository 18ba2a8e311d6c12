//go:build integration

// Package testdb provides helpers for tests that run against a live
// PostgreSQL instance. Tests using it are compiled only with the
// "integration" build tag and are skipped when no database URL is set.
//
// Each test works inside a transaction that is rolled back afterwards, so
// tests can share one database and run in parallel:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		userStore := postgres.NewPostgresUserStore(tx, nil)
//		...
//	})
package testdb
