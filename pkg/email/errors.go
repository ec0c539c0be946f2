package email

import "errors"

var (
	ErrInvalidConfig     = errors.New("email.errors.invalid_config")
	ErrInvalidParams     = errors.New("email.errors.invalid_params")
	ErrFailedToSendEmail = errors.New("email.errors.failed_to_send_email")
)
