package scaffold

// mainTemplate takes the project module path.
const mainTemplate = `package main

import (
	"log"
	"net/http"

	"%s/routes"

	"github.com/alucardeht/fasttags/pkg/web"
)

func main() {
	mux := http.NewServeMux()
	routes.Register(mux)

	log.Println("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", web.Middleware(mux)))
}
`

const viewsTemplate = `package views

import (
	"net/http"

	"github.com/alucardeht/fasttags/pkg/ft"
)

// Home renders the landing page at /home/.
func Home(r *http.Request) ft.Node {
	return ft.Div(
		ft.H1("It works"),
		ft.P("Edit views/views.go to add pages. Exported functions with this",
			" signature become routes the next time the route file is generated."),
	)
}
`

const extensionsTemplate = `# Extension snippets injected into document heads by name.
htmx:
  html:
    - '<script src="https://unpkg.com/htmx.org@2.0.4"></script>'
picocss:
  html:
    - '<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css">'
`

const gitignoreTemplate = `.fasttags/
*.log
`
