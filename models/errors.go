package models

// Error values returned by the service layer. The helper maps each type to
// an HTTP status; handlers never inspect message strings.

// ErrorValidation reports malformed or unresolvable input, such as a post
// referencing category ids that do not all exist.
type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

// ErrorConflict reports a uniqueness violation (username, category name).
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorNotFound reports that a referenced record does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorUnauthorized reports failed authentication: bad credentials or a
// missing, invalid, or expired token. Messages stay generic so callers
// cannot enumerate users.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorForbidden reports a valid identity that lacks ownership of the
// target resource. Deliberately distinct from ErrorUnauthorized.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

// ErrorIntegrity reports a cross-entity constraint breach, such as deleting
// a category that posts still reference.
type ErrorIntegrity struct {
	Message string
}

func (e ErrorIntegrity) Error() string { return e.Message }
