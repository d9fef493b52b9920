package services

// ServiceContainer bundles the engine's services for route registration.
type ServiceContainer struct {
	Ledger    LedgerSvc
	Report    ReportSvc
	Templates TemplateRegistrySvc
}
