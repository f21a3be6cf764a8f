// Package counter maintains the per-user count of stored TOTP secrets.
//
// Every user owns a data document holding a totpCount field. Creating a
// document under {userId}/userData/totps/ increments it and deleting one
// decrements it. Triggers decodes the Firestore CloudEvents that report
// those writes and applies the change to a Store: Firestore in production,
// Redis or Memory elsewhere.
package counter
