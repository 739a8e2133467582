package seeder

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/mosite/go-blog/internal/commands"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// GenerateMessage asks the seeder to create Count test articles.
type GenerateMessage struct {
	Count int `json:"count"`
}

// Type implements command.Message.
func (GenerateMessage) Type() string { return "blog.testdata.generate" }

// Validate implements command.Message.
func (m GenerateMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Count,
			validation.Required,
			validation.Min(1),
			validation.Max(MaxAdminCount),
		),
	)
}

// ClearMessage asks the seeder to wipe generated data.
type ClearMessage struct{}

// Type implements command.Message.
func (ClearMessage) Type() string { return "blog.testdata.clear" }

// Validate implements command.Message.
func (ClearMessage) Validate() error { return nil }

// NewGenerateHandler wires GenerateMessage to the seeder. Bulk runs can take
// a while, so the handler runs without a deadline.
func NewGenerateHandler(svc Service, provider interfaces.LoggerProvider) command.Commander[GenerateMessage] {
	return commands.NewHandler(func(ctx context.Context, msg GenerateMessage) error {
		_, err := svc.Generate(ctx, msg.Count)
		return err
	},
		commands.WithOperation[GenerateMessage]("testdata.generate"),
		commands.WithLogger[GenerateMessage](commands.CommandLogger(provider, "testdata")),
		commands.WithTimeout[GenerateMessage](0),
	)
}

// NewClearHandler wires ClearMessage to the seeder.
func NewClearHandler(svc Service, provider interfaces.LoggerProvider) command.Commander[ClearMessage] {
	return commands.NewHandler(func(ctx context.Context, msg ClearMessage) error {
		_, err := svc.Clear(ctx)
		return err
	},
		commands.WithOperation[ClearMessage]("testdata.clear"),
		commands.WithLogger[ClearMessage](commands.CommandLogger(provider, "testdata")),
	)
}
