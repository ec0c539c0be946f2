package submission

import (
	"fmt"
	"strings"
)

// UserSubject is the fixed subject of the confirmation sent to the submitter.
const UserSubject = "Thanks for your AIGRADE submission"

const teamBody = `<h2>New AIGRADE Instant Preview</h2>
<p><strong>Name:</strong> %s<br/>
   <strong>Email:</strong> %s</p>

<h3>Summary</h3>
<ul>
  <li><strong>Type:</strong> %s</li>
  <li><strong>URL:</strong> %s</li>
  <li><strong>Model/Repo:</strong> %s</li>
  <li><strong>Attachment:</strong> %s</li>
</ul>

<h3>Description</h3>
<pre style="white-space:pre-wrap;">%s</pre>

<p style="font-size:12px;color:#6B7280;">
  Submitted from: %s<br/>
  Referrer: %s<br/>
%s  Email me results?: %s &bull; Consent: %s
</p>
`

const userBody = `<p>Hi %s,</p>
<p>Thanks for sending your info for a quick AIGRADE preview.
   We'll process it shortly and email you an automated snapshot
   based on the info you provided. If you attached a brief/NDA link,
   we'll respect it.</p>

<h3>Summary</h3>
<ul>
  <li><strong>Type:</strong> %s</li>
  <li><strong>URL:</strong> %s</li>
  <li><strong>Model/Repo:</strong> %s</li>
  <li><strong>Attachment:</strong> %s</li>
</ul>

<p style="font-size:12px;color:#6B7280;">
  Submitted from: %s<br/>
  Referrer: %s
</p>

<p>&mdash; Team AIGRADE</p>
`

// TeamMessage renders the internal notification. All user-supplied values are
// escaped here, once, immediately before interpolation; the surrounding
// markup is static.
func TeamMessage(p Payload, includeUTM bool) (subject, html string) {
	subject = fmt.Sprintf("New AIGRADE submission: %s", firstNonEmpty(p.Name, p.What, "-"))

	utmLine := ""
	if includeUTM {
		utmLine = fmt.Sprintf("  UTM: %s<br/>\n", EscapeHTML(p.UTMLine()))
	}

	html = fmt.Sprintf(teamBody,
		orDash(EscapeHTML(p.Name)),
		orDash(EscapeHTML(p.Email)),
		orDash(EscapeHTML(p.What)),
		orDash(EscapeHTML(p.URL)),
		orDash(EscapeHTML(p.Repo)),
		orDash(EscapeHTML(p.Attach)),
		orDash(EscapeHTML(p.Desc)),
		orDash(EscapeHTML(p.PageURL)),
		orDash(EscapeHTML(p.Referrer)),
		utmLine,
		onOff(p.EmailMe),
		onOff(p.Agree),
	)
	return subject, html
}

// UserMessage renders the confirmation sent back to the submitter.
func UserMessage(p Payload) (subject, html string) {
	html = fmt.Sprintf(userBody,
		orDash(EscapeHTML(p.Name)),
		orDash(EscapeHTML(p.What)),
		orDash(EscapeHTML(p.URL)),
		orDash(EscapeHTML(p.Repo)),
		orDash(EscapeHTML(p.Attach)),
		orDash(EscapeHTML(p.PageURL)),
		orDash(EscapeHTML(p.Referrer)),
	)
	return UserSubject, html
}

// orDash substitutes the "-" placeholder for empty optional fields.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func onOff(s string) string {
	if s == "" {
		return "off"
	}
	return "on"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
