package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidReferenceMessages(t *testing.T) {
	// The messages are part of the API contract and name the offending
	// reference.
	assert.Equal(t, "Invalid supplier ID", ErrInvalidSupplier.Error())
	assert.Equal(t, "Invalid location ID", ErrInvalidLocation.Error())
}

func TestCreateOrderValidatesReferences(t *testing.T) {
	// Supplier is checked before location; a nonexistent supplier yields
	// ErrInvalidSupplier even when the location is also missing.
	t.Skip("Integration test - requires database")
}
