package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/events"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PayslipGenerator adalah potongan kecil dari payroll service yang
// dibutuhkan consumer, supaya tidak menarik seluruh dependency service.
type PayslipGenerator interface {
	GeneratePayslip(ctx context.Context, companyID, entryID string) error
}

type PayslipConsumer struct {
	reader    *kafkago.Reader
	generator PayslipGenerator
	logger    *zap.Logger
}

func NewPayslipConsumer(reader *kafkago.Reader, generator PayslipGenerator, logger *zap.Logger) *PayslipConsumer {
	return &PayslipConsumer{
		reader:    reader,
		generator: generator,
		logger:    logger.Named("payslip_consumer"),
	}
}

func (c *PayslipConsumer) Run(ctx context.Context) error {
	c.logger.Info("payslip consumer started", zap.String("topic", events.PayslipRequestedTopic))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("payslip consumer stopped")
				return ctx.Err()
			}
			c.logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

func (c *PayslipConsumer) handle(ctx context.Context, msg kafkago.Message) {
	var event events.PayslipRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// payload rusak tidak akan pernah berhasil, langsung skip
		c.logger.Warn("malformed payload, skipping",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)

	if err := c.generator.GeneratePayslip(ctx, event.CompanyID, event.EntryID); err != nil {
		c.logger.Error("generate payslip failed",
			zap.String("entry_id", event.EntryID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return
	}

	c.logger.Info("payslip generated",
		zap.String("entry_id", event.EntryID),
		zap.String("company_id", event.CompanyID),
	)
}

func (c *PayslipConsumer) Close() error {
	return c.reader.Close()
}
