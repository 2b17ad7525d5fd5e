package transfer

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// maxImportBytes bounds the size of an uploaded CSV file.
const maxImportBytes = 10 << 20

// ImportCSVInput is the Huma input for the import endpoint.
type ImportCSVInput struct {
	RawBody []byte `contentType:"text/csv"`
}

// ImportResult is the API response model for a finished import.
type ImportResult struct {
	Message string `json:"message" doc:"Human readable summary"`
	Count   int    `json:"count" doc:"Number of transactions stored"`
	Skipped int    `json:"skipped" doc:"Number of rows rejected"`
}

// ImportCSVOutput is the Huma output for the import endpoint.
type ImportCSVOutput struct {
	Body ImportResult
}

type csvImporter interface {
	ImportCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (service.ImportResult, error)
}

// ImportCSVHandler handles POST /v1/transactions/import/csv.
type ImportCSVHandler struct {
	TransferService csvImporter
}

func NewImportCSVHandler(svc csvImporter) *ImportCSVHandler {
	return &ImportCSVHandler{TransferService: svc}
}

func (h *ImportCSVHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "import-transactions-csv",
		Method:       http.MethodPost,
		Path:         "/v1/transactions/import/csv",
		Summary:      "Import transactions",
		Description:  "Stores every valid row of a CSV file with amount and category_id columns in one database transaction.",
		Tags:         []string{"Transactions"},
		Security:     auth.Required,
		MaxBodyBytes: maxImportBytes,
	}, h.handle)
}

func (h *ImportCSVHandler) handle(ctx context.Context, input *ImportCSVInput) (*ImportCSVOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	if len(input.RawBody) == 0 {
		return nil, huma.NewError(http.StatusBadRequest, "empty file")
	}

	result, err := h.TransferService.ImportCSV(ctx, userID, bytes.NewReader(input.RawBody))
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to import transactions")
	}

	return &ImportCSVOutput{Body: ImportResult{
		Message: result.Message,
		Count:   result.Count,
		Skipped: result.Skipped,
	}}, nil
}
