package rotation

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrCronParse       = errors.New("parse cron expression")
	ErrTriggerExpired  = errors.New("trigger has expired")
	ErrTimeConversion  = errors.New("time conversion")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// cronParseError returns a cron parse error with a custom error message,
// which unwraps to ErrCronParse.
func cronParseError(message string) error {
	return fmt.Errorf("%w: %s", ErrCronParse, message)
}

// timeConversionError returns a time conversion error with a custom error
// message, which unwraps to ErrTimeConversion.
func timeConversionError(message string) error {
	return fmt.Errorf("%w: %s", ErrTimeConversion, message)
}
