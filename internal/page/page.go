// Package page assembles the results site from rendered leaderboards and
// publishes it. The engine hands over plain text tables; this package
// wraps them in the tabbed HTML shell with the last-updated stamp and
// contact footer, and writes the file under an exclusive lock so two
// concurrent runs cannot interleave output.
package page

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"ttresults/internal/results"
	"ttresults/internal/rider"
)

// Info carries the page-level fields that do not come from the engine.
type Info struct {
	Title        string
	ContactName  string
	ContactEmail string
	Updated      time.Time
}

type block struct {
	ID   string
	Ages string
	Text string
}

type pageData struct {
	Title        string
	Men          []block
	Women        []block
	UpdatedDate  string
	UpdatedTime  string
	ContactName  string
	ContactEmail string
}

var pageTemplate = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
ul li {list-style:none;}
.center {text-align:center;}
#updated {text-align:center;color:#a0a0a0;font-style:italic;}
#contact {text-align:center;color:#a0a0a0;}
</style>
</head>
<body>
<div id="container">
<ul>
<li><a href="#men"><span>Men</span></a></li>
<li><a href="#women"><span>Women</span></a></li>
</ul>
<div id="men">
<ul>
{{- range .Men}}
<li><a href="#{{.ID}}"><span>{{.Ages}}</span></a></li>
{{- end}}
</ul>
{{- range .Men}}
<div id="{{.ID}}" class="center"><pre>
{{.Text}}</pre></div>
{{- end}}
</div>
<div id="women">
<ul>
{{- range .Women}}
<li><a href="#{{.ID}}"><span>{{.Ages}}</span></a></li>
{{- end}}
</ul>
{{- range .Women}}
<div id="{{.ID}}" class="center"><pre>
{{.Text}}</pre></div>
{{- end}}
</div>
</div>
<div id="updated"><br />Last updated on {{.UpdatedDate}} at {{.UpdatedTime}}<br /><br /></div>
{{- if .ContactEmail}}
<div id="contact">Contact <a href="mailto:{{.ContactEmail}}?subject=Age Group TT Results Issue">{{.ContactName}}</a> for any issues.</div>
{{- end}}
</body>
</html>
`))

// Assemble builds the full results page from rendered cohort tables.
func Assemble(tables []results.Table, info Info) (string, error) {
	data := pageData{
		Title:        info.Title,
		UpdatedDate:  info.Updated.Format("01/02/2006"),
		UpdatedTime:  info.Updated.Format("3:04 PM"),
		ContactName:  info.ContactName,
		ContactEmail: info.ContactEmail,
	}
	for _, t := range tables {
		b := block{ID: t.ID, Ages: t.Group.String(), Text: t.Text}
		switch t.Gender {
		case rider.Male:
			data.Men = append(data.Men, b)
		case rider.Female:
			data.Women = append(data.Women, b)
		}
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return sb.String(), nil
}

// Publish writes the page to path, holding a lock file alongside it for
// the duration of the write.
func Publish(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire publish lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write results page: %w", err)
	}
	return nil
}
