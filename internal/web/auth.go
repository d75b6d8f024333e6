package web

import (
	"errors"
	"net/http"
	"strings"

	"groshop/m/internal/auth"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Ensure(w, r)
	if err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if sess.Identity.UserID != 0 {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.render(w, sess, "login", page{Current: "login"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Ensure(w, r)
	if err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	uname := r.PostFormValue("uname")
	pass := r.PostFormValue("pass")
	if strings.TrimSpace(uname) == "" || strings.TrimSpace(pass) == "" {
		sess.Flash("error", "All fields are mandatory")
		sess.Stash("uname", uname)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	identity, err := h.auth.Authenticate(r.Context(), uname, pass)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		sess.Flash("error", "Username or password incorrect!")
		sess.Stash("uname", uname)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		flashFailure(sess, err)
		sess.Stash("uname", uname)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.Identity = identity
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Ensure(w, r)
	if err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if sess.Identity.UserID != 0 {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.render(w, sess, "register", page{Current: "register"})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Ensure(w, r)
	if err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	uname := r.PostFormValue("uname")
	pass := r.PostFormValue("pass")
	if strings.TrimSpace(uname) == "" || strings.TrimSpace(pass) == "" {
		sess.Flash("error", "All fields are mandatory")
		sess.Stash("uname", uname)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	identity, err := h.auth.Register(r.Context(), uname, pass)
	if err != nil {
		flashFailure(sess, err)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	// Registration logs the new admin straight in, like the login flow.
	sess.Identity = identity
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
