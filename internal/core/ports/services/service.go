package services

// ServiceContainer aggregates the services the handler layer composes.
// Exporter is nil when no spreadsheet credentials are configured.
type ServiceContainer struct {
	Event     EventSvcFacade
	Fund      FundSvcFacade
	Reporting ReportingSvcFacade
	Exporter  LedgerExporterSvc
}
