// Package services defines the business logic for topics, articles, comments
// and users. This file centralizes the service-level rejections so handlers
// and tests can match them with errors.Is.
//
// Every value here is an *apperr.Error, so the HTTP layer can render it
// without knowing which service produced it.
package services

import (
	"fmt"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
)

// Query and body validation errors.
var (
	// ErrInvalidSortBy is returned when sort_by is not an allowed column.
	ErrInvalidSortBy = apperr.BadRequest("Invalid query parameter")

	// ErrInvalidOrder is returned when order is neither asc nor desc.
	ErrInvalidOrder = apperr.BadRequest("Invalid query parameter")

	// ErrMissingFields is returned when a comment lacks a username or body.
	ErrMissingFields = apperr.BadRequest("Missing required fields")

	// ErrUsernameNotFound is returned when a comment names an unknown author.
	ErrUsernameNotFound = apperr.NotFound("Username does not exist")
)

func articleNotFound(id int64) error {
	return apperr.NotFound(fmt.Sprintf("Article with id %d not found", id))
}

func commentNotFound(id int64) error {
	return apperr.NotFound(fmt.Sprintf("Comment with id %d not found", id))
}

func userNotFound(username string) error {
	return apperr.NotFound(fmt.Sprintf("User %s not found", username))
}
