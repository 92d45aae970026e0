package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordScanCommandIsNotConstructed = errors.New(
	"RecordScanCommand must be created via NewRecordScanCommand constructor",
)

// RecordScanCommand carries one raw barcode read from the scanner.
type RecordScanCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewRecordScanCommand creates a command for a single scan code.
func NewRecordScanCommand(code string) (RecordScanCommand, error) {
	cmd := RecordScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return RecordScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordScanCommandIsNotConstructed)
}

// Code returns the scanned barcode.
func (c RecordScanCommand) Code() string {
	return c.code
}

func (c *RecordScanCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
