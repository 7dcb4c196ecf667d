// Package testdb provides test database utilities for the MeowHome API.
//
// The testdb package manages SurrealDB connections for acceptance tests
// with automatic namespace isolation and cleanup.
//
// # Test Database Setup
//
// Create a test database for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.DB for database operations
//	}
//
// # Isolation
//
// Each test gets a unique namespace, so tests never see each other's
// records. The collections are schemaless; no migrations are applied.
//
// # Skipping
//
// When no SurrealDB instance is reachable the test is skipped rather
// than failed, so the suite stays green on machines without a local
// database.
package testdb
