package web

import (
	"net/http"
	"strconv"
	"strings"

	"groshop/m/domain"
	"groshop/m/internal/auth"
	"groshop/m/internal/session"
)

func (h *Handler) employeePage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	users, err := h.accounts.List(r.Context())
	if err != nil {
		flashFailure(sess, err)
	}
	h.render(w, sess, "employee", page{Current: "employee", Employees: users})
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	user := domain.User{
		Username:   strings.TrimSpace(username),
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Department: strings.TrimSpace(r.PostFormValue("department")),
		DOB:        strings.TrimSpace(r.PostFormValue("DOB")),
		Phone:      strings.TrimSpace(r.PostFormValue("Phone")),
		Address:    strings.TrimSpace(r.PostFormValue("Address")),
		Role:       domain.RoleEmployee,
	}

	if user.Username == "" || strings.TrimSpace(password) == "" || user.Name == "" ||
		user.Department == "" || user.DOB == "" || user.Phone == "" || user.Address == "" {
		sess.Flash("error", "All fields are mandatory")
		http.Redirect(w, r, "/employee", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		flashFailure(sess, err)
		http.Redirect(w, r, "/employee", http.StatusSeeOther)
		return
	}
	user.Password = hash

	if _, err := h.accounts.Create(r.Context(), user); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Record added successfully!")
	}
	http.Redirect(w, r, "/employee", http.StatusSeeOther)
}

func (h *Handler) modifyEmployee(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	user := domain.User{
		Username:   strings.TrimSpace(r.PostFormValue("username")),
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Department: strings.TrimSpace(r.PostFormValue("department")),
		DOB:        strings.TrimSpace(r.PostFormValue("DOB")),
		Phone:      strings.TrimSpace(r.PostFormValue("Phone")),
		Address:    strings.TrimSpace(r.PostFormValue("Address")),
	}
	password := r.PostFormValue("password")

	// The password is the one field allowed to stay blank: blank keeps the
	// stored hash.
	if user.Username == "" || user.Name == "" || user.Department == "" ||
		user.DOB == "" || user.Phone == "" || user.Address == "" {
		sess.Flash("error", "All fields are mandatory")
		http.Redirect(w, r, "/employee", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.PostFormValue("dbId"), 10, 64)
	if err != nil {
		sess.Flash("error", "Something went wrong, try again!")
		http.Redirect(w, r, "/employee", http.StatusSeeOther)
		return
	}
	user.ID = id

	if err := h.accounts.Update(r.Context(), user); err != nil {
		flashFailure(sess, err)
		http.Redirect(w, r, "/employee", http.StatusSeeOther)
		return
	}

	if strings.TrimSpace(password) != "" {
		hash, err := auth.HashPassword(password)
		if err == nil {
			err = h.accounts.UpdatePassword(r.Context(), id, hash)
		}
		if err != nil {
			flashFailure(sess, err)
			http.Redirect(w, r, "/employee", http.StatusSeeOther)
			return
		}
	}

	sess.Flash("success", "Record updated successfully!")
	http.Redirect(w, r, "/employee", http.StatusSeeOther)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.ParseInt(r.PostFormValue("userId"), 10, 64)
	if err != nil {
		sess.Flash("error", "Something went wrong, try again!")
		http.Redirect(w, r, "/employee", http.StatusSeeOther)
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Record successfully deleted!")
	}
	http.Redirect(w, r, "/employee", http.StatusSeeOther)
}
