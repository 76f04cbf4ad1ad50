// package models defines the data model for the movie and game tracking client.
//
// Types mirror the JSON payloads of the tracking backend: catalog entries
// ([Movie], [Game]), per-user state ([WatchRecord], [TagEdit]), and account
// data ([User]). Local-only types for the tag palette live here as well so
// repositories and UI code share one vocabulary.
package models
