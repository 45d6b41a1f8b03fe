package crane

import "context"

// Repository - interface for the crane taxonomy tables
type Repository interface {
	ListCategories(ctx context.Context) ([]CraneCategory, error)
	ListTypes(ctx context.Context) ([]CraneType, error)
	GetTypeByID(ctx context.Context, id string) (CraneType, error)
	ListModelsByType(ctx context.Context, craneTypeID string) ([]CraneModel, error)
	GetModelByID(ctx context.Context, id string) (CraneModel, error)

	// GetRequiredCertificates resolves the certificate types required to
	// operate any crane in the categories covering the given crane types.
	GetRequiredCertificates(ctx context.Context, craneTypeIDs []string) ([]CertificateType, error)
}
