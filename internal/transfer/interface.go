package transfer

import (
	"context"

	"mentalbank/internal/model"
)

// UseCase is the business surface of the transfer domain.
type UseCase interface {
	// Export renders the caller's full data set in the requested format.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
	// Import replaces the caller's data with the uploaded document.
	// The apply is all-or-nothing.
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)
}
