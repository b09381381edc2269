// Package api handles incoming HTTP requests for the news service: path and
// body parsing, translation of store and domain errors into HTTP responses,
// and JSON response formatting. Handlers depend only on the store interfaces.
package api
