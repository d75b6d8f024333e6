package web

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"groshop/m/domain"
	"groshop/m/internal/auth"
	"groshop/m/internal/billing"
	"groshop/m/internal/session"
	"groshop/m/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Handler bundles dependencies for the web routes.
type Handler struct {
	accounts  store.AccountRepository
	inventory store.InventoryRepository
	auth      *auth.Service
	billing   *billing.Accumulator
	sessions  *session.Manager
	tmpl      *template.Template
}

// New constructs a Handler.
func New(accounts store.AccountRepository, inventory store.InventoryRepository, authSvc *auth.Service, acc *billing.Accumulator, sessions *session.Manager) *Handler {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"mul": func(price float64, qty int64) float64 { return price * float64(qty) },
	}).ParseFS(templateFS, "templates/*.html"))
	return &Handler{
		accounts:  accounts,
		inventory: inventory,
		auth:      authSvc,
		billing:   acc,
		sessions:  sessions,
		tmpl:      tmpl,
	}
}

// Router wires up the application routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatalf("static assets: %v", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))

	r.Get("/", h.loginPage)
	r.Post("/", h.login)
	r.Get("/register", h.registerPage)
	r.Post("/register", h.register)
	r.Get("/sign-out", h.signOut)

	r.Get("/home", h.requireSession(h.home))
	r.Get("/grocery", h.requireSession(h.groceryPage))
	r.Post("/grocery", h.requireSession(h.createGrocery))
	r.Post("/modify_grocery", h.requireSession(h.modifyGrocery))
	r.Post("/delete_grocery", h.requireSession(h.deleteGrocery))

	r.Get("/employee", h.requireAdmin(h.employeePage))
	r.Post("/employee", h.requireAdmin(h.createEmployee))
	r.Post("/modify_employee", h.requireAdmin(h.modifyEmployee))
	r.Post("/delete_employee", h.requireAdmin(h.deleteEmployee))

	r.Get("/profile", h.requireSession(h.profilePage))
	r.Post("/modify_profile", h.requireSession(h.modifyProfile))
	r.Post("/change_password", h.requireSession(h.changePassword))
	r.Post("/delete_account", h.requireSession(h.deleteAccount))

	r.Get("/invoice", h.requireSession(h.invoicePage))
	r.Post("/invoice", h.requireSession(h.addInvoiceItem))
	r.Post("/invoice/plus_qty", h.requireSession(h.plusQty))
	r.Post("/invoice/minus_qty", h.requireSession(h.minusQty))
	r.Get("/invoice/clear", h.requireSession(h.clearInvoice))

	r.Get("/print_bill", h.requireSession(h.printBillPage))
	r.Post("/print_bill/update", h.requireSession(h.commitBill))

	r.NotFound(h.notFound)

	return r
}

// sessionHandler runs with the request's live session already resolved.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

func (h *Handler) requireSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Lookup(r)
		if err != nil || sess.Identity.UserID == 0 {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

func (h *Handler) requireAdmin(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Lookup(r)
		if err != nil || sess.Identity.Role != domain.RoleAdmin {
			// Anonymous sessions carry no role, so this covers them too.
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

// page carries everything a view can show.
type page struct {
	Current   string
	LoggedIn  bool
	User      auth.Identity
	Flashes   []session.Flash
	Form      map[string]string
	Groceries []domain.Grocery
	Employees []domain.User
	Profile   domain.User
	Bill      *domain.Bill
}

func (h *Handler) render(w http.ResponseWriter, sess *session.Session, name string, p page) {
	if sess != nil {
		p.LoggedIn = sess.Identity.UserID != 0
		p.User = sess.Identity
		p.Flashes = sess.Flashes()
		if p.Form == nil {
			p.Form = sess.PopStash()
		}
		p.Bill = sess.Bill
	}
	if err := h.tmpl.ExecuteTemplate(w, name+".html", p); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, nil, "404", page{})
}

// flashFailure maps an error to its one-shot notice. Everything outside the
// known taxonomy gets the generic message.
func flashFailure(sess *session.Session, err error) {
	switch {
	case errors.Is(err, billing.ErrItemNotFound):
		sess.Flash("error", "Item not found!")
	case errors.Is(err, billing.ErrInsufficientStock), errors.Is(err, store.ErrInsufficientStock):
		sess.Flash("error", "Insufficient items!")
	case errors.Is(err, billing.ErrLineNotFound), errors.Is(err, store.ErrNotFound):
		sess.Flash("error", "Record not found!")
	case errors.Is(err, auth.ErrUsernameTaken), errors.Is(err, store.ErrDuplicate):
		sess.Flash("error", "Username already exists!")
	default:
		sess.Flash("error", "Something went wrong, try again!")
	}
}
