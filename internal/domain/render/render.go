package render

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/microcosm-cc/bluemonday"
)

const styles = `
<style>
.event-banner{background:#101820;color:#fff;padding:12px 16px;text-align:center;font-size:16px;}
.event-banner__link{color:#fff;text-decoration:underline;}
@media(max-width:600px){.event-banner{font-size:14px;padding:10px 12px;}}
</style>
`

var bannerTemplate = template.Must(template.New("banner").Parse(
	`{{.Styles}}<div class="event-banner" role="region" aria-label="Event banner">` +
		`{{if .Link}}<a class="event-banner__link" href="{{.Link}}">{{.Message}}</a>{{else}}{{.Message}}{{end}}` +
		`</div>`,
))

type bannerView struct {
	Styles  template.HTML
	Link    string
	Message template.HTML
}

type renderer struct {
	policy       *bluemonday.Policy
	// linkedPolicy drops anchors from text that the banner link already wraps.
	linkedPolicy *bluemonday.Policy
	inlineStyles bool
}

func NewRenderer(inlineStyles bool) *renderer {
	return &renderer{
		policy:       newPolicy(true),
		linkedPolicy: newPolicy(false),
		inlineStyles: inlineStyles,
	}
}

// newPolicy allows inline formatting and, optionally, links.
func newPolicy(allowLinks bool) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"b", "strong", "i", "em", "u", "s", "small",
		"mark", "code", "sub", "sup", "span", "br",
	)
	if allowLinks {
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
	}
	return p
}

func (r *renderer) Sanitize(text string) string {
	return r.policy.Sanitize(text)
}

// Render returns the banner fragment, or an empty string when the banner has
// no displayable text.
func (r *renderer) Render(banner entity.Banner) template.HTML {
	if banner.Text == "" {
		return ""
	}

	policy := r.policy
	if banner.Link != "" {
		policy = r.linkedPolicy
	}

	message := policy.Sanitize(banner.Text)
	if strings.TrimSpace(message) == "" {
		slog.Debug("banner text is empty after sanitizing", "banner_id", banner.BannerID)
		return ""
	}

	view := bannerView{
		Link:    banner.Link,
		Message: template.HTML(message),
	}
	if r.inlineStyles {
		view.Styles = template.HTML(styles)
	}

	var buf bytes.Buffer
	if err := bannerTemplate.Execute(&buf, view); err != nil {
		slog.Error("error executing banner template", "banner_id", banner.BannerID, "error", err)
		return ""
	}

	return template.HTML(buf.String())
}
