package guard

// Rejection messages returned to the caller.
const (
	MsgNotInDomain = "This request is outside the supported CRM analytics domain. " +
		"Ask about open pipe, opportunities, products, KPIs, content, SMEs or workflows."
	MsgExcludedAction = "This request is not for open pipe analysis. " +
		"Use PipeGen tools for pipeline generation."
	MsgExcludedFamily = "Renewal, upsell and cross-sell requests are not handled by open pipe analysis. " +
		"Use PipeGen tools for these opportunity types."
	MsgUnsupportedSyntax = "Unsupported filter syntax. " +
		"Provide minStage, productListCsv, ouName, country, timeFrame, limitN only."
)
