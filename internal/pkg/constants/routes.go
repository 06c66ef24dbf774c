package constants

// Route constants shared by the routers and the page templates
const (
	PublicRoute        = "/"
	CountryTableRoute  = "/fragments/countries"
	APIRoute           = "/api"
	APIV1Route         = "/v1"
	CountryFigureRoute = "/figures/country"
	// CountryFigureURL is the dropdown's change endpoint as seen by the browser
	CountryFigureURL = APIRoute + APIV1Route + CountryFigureRoute
	MetricsRoute     = "/metrics"
)
