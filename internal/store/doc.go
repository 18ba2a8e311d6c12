// Package store defines interfaces for data persistence operations.
// These interfaces keep the services independent of the database, while the
// PostgreSQL implementations live in internal/platform/postgres.
//
// Each request runs as its own unit of work: services obtain a *sql.Tx
// through a Transactor and bind stores to it with WithTx.
package store
