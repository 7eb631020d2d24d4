package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/infra"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

// ClosingReportWorker builds the PDF report for a closed register
// and emails it to the configured address when SMTP is set up.
type ClosingReportWorker struct {
	registers   repository.RegisterRepository
	mailer      *infra.Mailer
	storagePath string
	reportEmail string
}

func NewClosingReportWorker(registers repository.RegisterRepository, mailer *infra.Mailer, storagePath, reportEmail string) *ClosingReportWorker {
	return &ClosingReportWorker{
		registers:   registers,
		mailer:      mailer,
		storagePath: storagePath,
		reportEmail: reportEmail,
	}
}

func (w *ClosingReportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ClosingReportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("invalid closing report payload")
		return
	}

	registerID, err := uuid.Parse(payload.RegisterID)
	if err != nil {
		log.Error().Err(err).Str("register_id", payload.RegisterID).Msg("invalid register id in closing report payload")
		return
	}

	reg, err := w.registers.FindByID(ctx, registerID)
	if err != nil {
		log.Error().Err(err).Str("register_id", payload.RegisterID).Msg("register not found for closing report")
		return
	}
	movements, err := w.registers.ListMovements(ctx, registerID)
	if err != nil {
		log.Error().Err(err).Str("register_id", payload.RegisterID).Msg("failed to load movements for closing report")
		return
	}

	path, err := infra.GenerateClosingReportPDF(reg, movements, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("register_id", payload.RegisterID).Msg("failed to generate closing report")
		return
	}
	log.Info().Str("register_id", payload.RegisterID).Str("path", path).Msg("closing report generated")

	if w.mailer == nil || !w.mailer.Configured() || w.reportEmail == "" {
		return
	}
	closedAt := reg.OpenedAt
	if reg.ClosedAt != nil {
		closedAt = *reg.ClosedAt
	}
	subject := fmt.Sprintf("Fechamento de caixa - %s", closedAt.Format("02/01/2006 15:04"))
	body := fmt.Sprintf("Relatório de fechamento do caixa %s em anexo.", reg.ID)
	if err := w.mailer.SendReport(w.reportEmail, subject, body, path); err != nil {
		log.Error().Err(err).Msg("failed to email closing report")
	}
}
