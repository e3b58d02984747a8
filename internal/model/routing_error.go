package model

import "errors"

// ErrorKind classifies a terminal routing error.
type ErrorKind string

const (
	KindDomainRejection       ErrorKind = "DOMAIN_REJECTION"
	KindSyntaxRejection       ErrorKind = "SYNTAX_REJECTION"
	KindClassificationFailure ErrorKind = "CLASSIFICATION_FAILURE"
	KindMissingRequiredSlot   ErrorKind = "MISSING_REQUIRED_SLOT"
	KindRangeViolation        ErrorKind = "RANGE_VIOLATION"
)

// RoutingError is the single structured error a routing call can return.
// Field names the offending argument for MissingRequiredSlot and RangeViolation.
// Reason refines DomainRejection (see the Reason* constants).
type RoutingError struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field,omitempty"`
	Reason  string    `json:"reason,omitempty"`
	Message string    `json:"error"`
}

func (e *RoutingError) Error() string {
	return e.Message
}

// Domain rejection reasons.
const (
	ReasonNotInDomain    = "not_in_domain"
	ReasonExcludedAction = "excluded_action"
	ReasonExcludedFamily = "excluded_family"
)

// AsRoutingError unwraps err into a *RoutingError.
func AsRoutingError(err error) (*RoutingError, bool) {
	var re *RoutingError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsKind reports whether err is a RoutingError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	re, ok := AsRoutingError(err)
	return ok && re.Kind == kind
}
