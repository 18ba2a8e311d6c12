// Package mocks provides shared test doubles for the store, auth and service
// interfaces.
//
// Two styles live side by side:
//
//   - Function-field mocks (MockUserStore, MockAdStore, MockJWTService, ...).
//     Without overrides the stores behave like small in-memory tables, which
//     makes them usable for end-to-end router tests.
//   - testify/mock based mocks (TestifyMockUserStore, TestifyMockAdStore) for
//     tests that assert on exact calls.
//
//	users := mocks.NewMockUserStore()
//	ads := mocks.NewMockAdStore()
//	svc := service.NewAdService(ads, &mocks.MockTransactor{}, logger)
package mocks
