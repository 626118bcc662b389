// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package, and calls
// the service layer. It acts as the interface between the HTTP request and
// the business logic.
package handler
