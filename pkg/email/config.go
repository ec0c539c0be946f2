package email

// Config holds outbound email configuration.
// The Postmark tokens are optional so that local environments can run with
// the dev driver; SenderEmail is always required because it establishes the
// From identity of every message the service produces.
type Config struct {
	Driver               string `env:"EMAIL_DRIVER" envDefault:"postmark"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"FROM_EMAIL,required"`
	DevOutputDir         string `env:"EMAIL_DEV_DIR" envDefault:"./email-output"`
}
