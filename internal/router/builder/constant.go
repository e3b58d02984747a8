package builder

// Error messages
const (
	MsgMissingOUFmt = "Operating Unit (ouName) is required for %s. " +
		"Please specify an OU like 'AMER ACC' or 'EMEA ENTR'."
	MsgMissingTopic = "Please specify a topic to search for (e.g., 'Data Cloud', 'Sales Cloud')."
	MsgMissingSME   = "Please specify a region (e.g., 'EMEA', 'AMER') or an area of expertise " +
		"(e.g., 'Data Cloud') to find an SME."
	MsgUnrecognized = "Could not determine which tool to use. Ask about open pipe, KPIs, " +
		"content, SMEs, workflows or future pipeline."
	MsgRangeFmt   = "%s must be between %d and %d (got %v)"
	MsgNotIntFmt  = "%s must be an integer (got %v)"
	correlationNS = "crm-intent-router.negative"
)

// Purposes named in missing-OU messages.
const (
	purposeOpenPipe = "open pipe analysis"
	purposeKPI      = "KPI analysis"
	purposeFuture   = "future pipeline analysis"
)

// Correlation ID prefix for negative-intent queries.
const correlationPrefix = "negative-"
