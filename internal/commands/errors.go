package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command failures. Callers match on these
// instead of comparing messages.
const (
	CodeInvalid  = "BLOG_COMMAND_INVALID"
	CodeCanceled = "BLOG_COMMAND_CANCELED"
	CodeTimeout  = "BLOG_COMMAND_TIMEOUT"
	CodeFailed   = "BLOG_COMMAND_FAILED"
)

// wrapError categorizes a handler failure, leaving already-wrapped errors
// untouched so codes survive nested dispatch.
func wrapError(err error, category goerrors.Category, msg, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return wrapError(err, goerrors.CategoryValidation,
		"command message rejected", CodeInvalid)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return wrapError(err, goerrors.CategoryCommand,
			"command ran past its deadline", CodeTimeout)
	case errors.Is(err, context.Canceled):
		return wrapError(err, goerrors.CategoryCommand,
			"command canceled before completion", CodeCanceled)
	default:
		return wrapError(err, goerrors.CategoryCommand,
			"command context failed", CodeFailed)
	}
}

func wrapExecuteError(err error) error {
	return wrapError(err, goerrors.CategoryCommand,
		"command execution failed", CodeFailed)
}
