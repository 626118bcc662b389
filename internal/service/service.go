// Package service contains the business logic.
//
// It sits behind the handler layer and receives payloads that already
// passed schema validation.
package service
