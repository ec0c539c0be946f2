package submission

import "errors"

var (
	// ErrMissingNameOrEmail signals a rejected submission under strict validation.
	ErrMissingNameOrEmail = errors.New("submission.errors.missing_name_or_email")
	// ErrSendFailed signals that at least one outbound notification was rejected.
	ErrSendFailed = errors.New("submission.errors.send_failed")
)
