// Package service contains the application use cases: registering and
// authenticating users, and creating, reading and deleting ads.
//
// Services receive their stores, a store.Transactor and the password
// hasher by constructor injection and never depend on a concrete database.
// Expected outcomes are reported as sentinel errors (ErrUserExists,
// ErrInvalidCredentials, ErrAdNotFound, ErrAdNotOwned, ...); anything else
// comes back wrapped in a *ServiceError so the API layer can map it to 500.
package service
