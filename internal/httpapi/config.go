package httpapi

import (
	"fmt"
	"strings"
)

// CORSMode selects how the configured origin value is interpreted.
type CORSMode string

const (
	// CORSWildcardCSV treats AllowedOrigin as a comma-separated allow-list
	// and falls back to "*" in the allow-origin header when unset.
	CORSWildcardCSV CORSMode = "wildcard-csv"
	// CORSSingleOrigin treats AllowedOrigin as exactly one permitted origin.
	CORSSingleOrigin CORSMode = "single-origin"
)

// ErrorShape selects the JSON layout of error responses.
type ErrorShape string

const (
	// ShapeOKFalse renders errors as {"ok":false,"error":...} and keeps the
	// 500 message generic.
	ShapeOKFalse ErrorShape = "ok-false"
	// ShapeBareError renders errors as {"error":...} and passes the raw send
	// error message through on 500.
	ShapeBareError ErrorShape = "bare-error"
)

// Config parameterizes the submit pipeline. The two historical frontends
// differ only in these knobs, so one handler serves both.
type Config struct {
	AllowedOrigin string     `env:"ALLOWED_ORIGIN"`
	CORSMode      CORSMode   `env:"CORS_MODE" envDefault:"wildcard-csv"`
	ErrorShape    ErrorShape `env:"ERROR_SHAPE" envDefault:"ok-false"`
}

// Validate checks the enum fields so a misconfigured deployment fails at startup.
func (c Config) Validate() error {
	switch c.CORSMode {
	case CORSWildcardCSV, CORSSingleOrigin:
	default:
		return fmt.Errorf("%w: CORS_MODE %q", ErrInvalidConfig, c.CORSMode)
	}
	switch c.ErrorShape {
	case ShapeOKFalse, ShapeBareError:
	default:
		return fmt.Errorf("%w: ERROR_SHAPE %q", ErrInvalidConfig, c.ErrorShape)
	}
	return nil
}

// allowList returns the set of permitted Origin values. An empty list means
// every origin passes.
func (c Config) allowList() []string {
	if c.AllowedOrigin == "" {
		return nil
	}
	if c.CORSMode == CORSSingleOrigin {
		return []string{c.AllowedOrigin}
	}
	parts := strings.Split(c.AllowedOrigin, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// allowOriginHeader is the value advertised in Access-Control-Allow-Origin.
func (c Config) allowOriginHeader() string {
	if c.AllowedOrigin == "" {
		return "*"
	}
	return c.AllowedOrigin
}
