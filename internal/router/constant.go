package router

// Log prefixes
const (
	LogPrefixRoute   = "internal.router.Route"
	LogPrefixAnalyze = "internal.router.Analyze"
	LogPrefixNew     = "internal.router.New"
)

// Router configuration
const (
	DefaultCacheSize = 1024
)

// Metric labels
const (
	metricsNamespace = "crm_router"
	labelTool        = "tool"
	labelKind        = "kind"
)
