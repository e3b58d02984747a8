package crm

import "time"

const (
	// DefaultAPIVersion is the REST API version used when none is configured.
	DefaultAPIVersion = "v58.0"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// actionPathFmt is base URL, API version, action name.
	actionPathFmt = "%s/services/data/%s/actions/custom/%s"

	// maxResponseBytes caps how much of an action response is read.
	maxResponseBytes = 10 << 20
)
