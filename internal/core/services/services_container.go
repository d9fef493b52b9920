package services

import (
	portsrepo "github.com/schoolledger/school_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the engine's services together for route
// registration.
func NewServiceContainer(
	recordRepo portsrepo.RecordRepository,
	registry portssvc.TemplateRegistrySvc,
	renderer portssvc.RendererSvc,
	stamp ProductStamp,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:    NewLedgerService(recordRepo),
		Report:    NewReportService(registry, renderer, stamp),
		Templates: registry,
	}
}
