// Package store defines the persistence contracts of the news service and the
// closed set of errors every implementation reports. Implementations translate
// their native failures into these errors once, so nothing above the store
// boundary inspects driver error codes.
package store
