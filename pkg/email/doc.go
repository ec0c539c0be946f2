// Package email provides a provider-agnostic interface for sending
// transactional emails.
//
// The package is built around the EmailSender interface so the concrete
// provider can be swapped without touching application code:
//   - NewPostmarkClient for production delivery via Postmark
//   - NewDevSender for local development (writes messages to disk)
//
// All implementations validate parameters before sending and report failures
// through the sentinel errors ErrInvalidConfig, ErrInvalidParams and
// ErrFailedToSendEmail, which can be checked with errors.Is.
package email
