// Package submission models a form submission and turns it into the two
// outbound notification emails.
package submission

import (
	"strconv"
	"strings"
)

// Payload carries one form submission. Every field is optional at this level;
// empty string is the canonical absent value throughout the service.
type Payload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	What     string `json:"what"`
	URL      string `json:"url"`
	Repo     string `json:"repo"`
	Desc     string `json:"desc"`
	Attach   string `json:"attach"`
	EmailMe  string `json:"email_me"`
	Agree    string `json:"agree"`
	PageURL  string `json:"page_url"`
	Referrer string `json:"referrer"`

	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMTerm     string `json:"utm_term"`
	UTMContent  string `json:"utm_content"`
}

// FromMap extracts the known fields from a decoded JSON object.
// Unknown keys are ignored; missing keys default to empty string.
func FromMap(m map[string]any) Payload {
	return Payload{
		Name:        stringValue(m["name"]),
		Email:       stringValue(m["email"]),
		What:        stringValue(m["what"]),
		URL:         stringValue(m["url"]),
		Repo:        stringValue(m["repo"]),
		Desc:        stringValue(m["desc"]),
		Attach:      stringValue(m["attach"]),
		EmailMe:     stringValue(m["email_me"]),
		Agree:       stringValue(m["agree"]),
		PageURL:     stringValue(m["page_url"]),
		Referrer:    stringValue(m["referrer"]),
		UTMSource:   stringValue(m["utm_source"]),
		UTMMedium:   stringValue(m["utm_medium"]),
		UTMCampaign: stringValue(m["utm_campaign"]),
		UTMTerm:     stringValue(m["utm_term"]),
		UTMContent:  stringValue(m["utm_content"]),
	}
}

// stringValue coerces a decoded JSON scalar to the canonical string form.
// Booleans follow checkbox semantics: true reads as "on", false as absent.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "on"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// UTMLine joins the non-empty attribution fields with " / ".
// With no attribution present the line is "/".
func (p Payload) UTMLine() string {
	fields := []string{p.UTMSource, p.UTMMedium, p.UTMCampaign, p.UTMTerm, p.UTMContent}
	present := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return "/"
	}
	return strings.Join(present, " / ")
}
