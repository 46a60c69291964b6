// Package models holds the payloads returned by the Unsplash API. Fields the
// API may send as null are pointers.
package models
