package flow

// Page selectors. These are tied to markup on third-party pages and break
// when those pages change.
const (
	// anchors in the reference table that link to the alpha-2 article
	AlphaTwoLinks = `//a[@title='ISO 3166-1 alpha-2']`

	// example legend labels on the trends landing page, first two are used
	TrendingLegend = `.fe-explore-example-legend-text`

	SearchInput = `//input[@placeholder="Enter a search term or a topic"]`
)
