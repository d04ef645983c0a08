package usecase

import (
	"context"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/infra/queue"
	"github.com/santoscleaning/website-api/pkg/logger"
	"github.com/santoscleaning/website-api/pkg/metrics"
)

// CaptureLeadUseCase turns a contact submission into a stored lead and
// tells the office about it. The queue is optional; losing a
// notification never loses the lead.
type CaptureLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
	Queue QueueProducerInterface
	Log   logger.Logger
}

func NewCaptureLeadUseCase(leads entity.LeadRepositoryInterface, producer QueueProducerInterface, log logger.Logger) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Leads: leads, Queue: producer, Log: log}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	lead, err := entity.NewLead(input.Name, input.Phone, input.Email, input.Message, input.SMSConsent, input.Language, input.Source)
	if err != nil {
		return nil, ValidationError{Field: "body", Message: err.Error()}
	}

	id, err := uc.Leads.Insert(ctx, lead)
	if err != nil {
		return nil, &StoreError{Op: "insert lead", Err: err}
	}

	metrics.RecordLeadCaptured(lead.Source)
	uc.Log.Info("new lead received", "name", lead.Name, "email", lead.Email, "source", lead.Source)

	if uc.Queue != nil {
		payload := queue.NotificationPayload{
			Kind:     queue.KindLead,
			Name:     lead.Name,
			Email:    lead.Email,
			Phone:    lead.Phone,
			Message:  lead.Message,
			Language: lead.Language,
			Source:   lead.Source,
		}
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			uc.Log.Error("lead notification publish failed", "error", err)
			metrics.RecordNotificationError()
		}
	}

	return &CaptureLeadOutput{
		Success: true,
		Message: "Contact request submitted successfully",
		ID:      id,
	}, nil
}
