// Package algotables holds the static coefficient tables for each
// registered bilinear algorithm and a small id → bilinear.Descriptor
// registry. Adding a new fast algorithm is purely adding a table here
// (spec §6.3) — nothing elsewhere in the engine changes.
package algotables
