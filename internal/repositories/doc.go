// package repositories provides the local persistence layer.
//
// The tracking backend owns watch records and tag edits; what lives locally
// is the reusable tag palette and UI preferences, stored in SQLite so they
// survive logouts and session resets.
package repositories
