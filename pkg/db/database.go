package db

import (
	"context"
	"fmt"
	"net/url"
)

// Document is a schema-less JSON object as callers send it.
//
// No field is validated, typed or defaulted. The store-assigned identity is
// not part of a Document: drivers strip it on read-back, so a scan returns
// what callers originally stored.
type Document map[string]interface{}

// RecordInterface is the access interface for the record collection.
type RecordInterface interface {
	// Insert appends document to the collection.
	//
	// It returns the identity the store assigned to the new record.
	Insert(ctx context.Context, document Document) (string, error)

	// ScanAll returns every document in the collection, identity stripped.
	//
	// Ordering is store-native. No guarantee is made.
	ScanAll(ctx context.Context) ([]Document, error)
}

// RecordDatabase is the interface of the record store as a whole.
type RecordDatabase interface {
	Records() RecordInterface

	// Close releases the shared connection resource.
	Close() error
}

type Driver string

const (
	MongoDB    Driver = "mongodb"
	PostgreSQL Driver = "postgres"
)

// DetectDriver maps a store URI onto the driver serving its scheme.
//
// Supported schemes: mongodb, mongodb+srv, postgres, postgresql.
func DetectDriver(uri string) (Driver, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("malformed store uri %q: %w", uri, err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return MongoDB, nil
	case "postgres", "postgresql":
		return PostgreSQL, nil
	case "":
		return "", fmt.Errorf("store uri %q has no scheme", uri)
	default:
		return "", fmt.Errorf("unsupported store uri scheme: %s", u.Scheme)
	}
}
