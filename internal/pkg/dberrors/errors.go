package dberrors

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateKeyError checks if the error is a MongoDB E11000 duplicate key error,
// optionally restricted to an index whose name contains one of the given fields.
func IsDuplicateKeyError(err error, fields ...string) bool {
	if !mongo.IsDuplicateKeyError(err) {
		return false
	}
	if len(fields) == 0 {
		return true
	}

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, writeErr := range we.WriteErrors {
			for _, field := range fields {
				if strings.Contains(writeErr.Message, field) {
					return true
				}
			}
		}
		return false
	}
	return true
}
