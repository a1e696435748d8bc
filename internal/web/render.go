package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/notify"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded stylesheet and any future assets.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// pageData is the envelope every template receives.
type pageData struct {
	Title    string
	LoggedIn bool
	Username string
	Flashes  []notify.Notification
	DemoData bool
	Data     any
}

// Renderer holds the parsed page templates. Each page is layout.html plus
// one content file.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"capitalize": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"statusClass": func(status string) string {
		switch strings.ToLower(status) {
		case "pending":
			return "status-pending"
		case "processing":
			return "status-processing"
		case "shipped":
			return "status-shipped"
		case "delivered":
			return "status-delivered"
		case "cancelled":
			return "status-cancelled"
		default:
			return "status-unknown"
		}
	},
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

// NewRenderer parses all page templates from the embedded FS.
func NewRenderer() (*Renderer, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" || !strings.HasSuffix(name, ".html") {
			continue
		}
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes a page. A missing or failing template degrades to a plain
// 500 rather than a broken half-rendered body.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data pageData) {
	tmpl, ok := rn.pages[page]
	if !ok {
		log.Printf("[Web] Unknown template %q", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("[Web] Failed to render %q: %v", page, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}
