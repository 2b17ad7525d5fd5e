package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

// ExportCSVOutput is the Huma output for the export endpoint. The body is
// sent as is.
type ExportCSVOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type csvExporter interface {
	ExportCSV(ctx context.Context, userID uuid.UUID, w io.Writer) error
}

// ExportCSVHandler handles GET /v1/transactions/export/csv.
type ExportCSVHandler struct {
	TransferService csvExporter
}

func NewExportCSVHandler(svc csvExporter) *ExportCSVHandler {
	return &ExportCSVHandler{TransferService: svc}
}

func (h *ExportCSVHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions-csv",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/export/csv",
		Summary:     "Export transactions",
		Description: "Downloads every transaction of the caller as CSV, newest first.",
		Tags:        []string{"Transactions"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *ExportCSVHandler) handle(ctx context.Context, _ *struct{}) (*ExportCSVOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := h.TransferService.ExportCSV(ctx, userID, &buf); err != nil {
		return nil, common.ServiceError(ctx, err, "Transaction", "failed to export transactions")
	}

	return &ExportCSVOutput{
		ContentType:        "text/csv",
		ContentDisposition: fmt.Sprintf("attachment; filename=transactions_%s.csv", userID),
		Body:               buf.Bytes(),
	}, nil
}
