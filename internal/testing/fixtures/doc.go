// Package fixtures provides test data factories for the MeowHome API.
//
// Each factory method creates entities with sensible defaults while
// allowing field overrides on the returned value before insertion.
// Factories persist through the family repository and return fully
// populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB, "fam-test")
//	member := f.CreateMember(t, "Mochi")
//	todo := f.CreateTodo(t, "Buy milk")
//	event := f.CreateEvent(t, "Dentist", time.Now())
package fixtures
