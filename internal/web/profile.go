package web

import (
	"net/http"
	"strings"

	"groshop/m/domain"
	"groshop/m/internal/auth"
	"groshop/m/internal/session"
)

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	user, err := h.accounts.GetByID(r.Context(), sess.Identity.UserID)
	if err != nil {
		flashFailure(sess, err)
	}
	user.Password = ""
	h.render(w, sess, "profile", page{Current: "profile", Profile: user})
}

func (h *Handler) modifyProfile(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	user := domain.User{
		ID:         sess.Identity.UserID,
		Username:   strings.TrimSpace(r.PostFormValue("username")),
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Department: strings.TrimSpace(r.PostFormValue("department")),
		DOB:        strings.TrimSpace(r.PostFormValue("DOB")),
		Phone:      strings.TrimSpace(r.PostFormValue("Phone")),
		Address:    strings.TrimSpace(r.PostFormValue("Address")),
	}

	if user.Username == "" || user.Name == "" || user.Department == "" ||
		user.DOB == "" || user.Phone == "" || user.Address == "" {
		sess.Flash("error", "All fields are mandatory")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	if err := h.accounts.Update(r.Context(), user); err != nil {
		flashFailure(sess, err)
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	sess.Identity.Username = user.Username
	sess.Flash("success", "Profile updated successfully!")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	newPassword := r.PostFormValue("newPassword")
	confirmPassword := r.PostFormValue("confirmPassword")

	if newPassword != confirmPassword {
		sess.Flash("error", "New password should match with confirm password!")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	if strings.TrimSpace(newPassword) == "" {
		sess.Flash("error", "All fields are mandatory")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(newPassword)
	if err == nil {
		err = h.accounts.UpdatePassword(r.Context(), sess.Identity.UserID, hash)
	}
	if err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Password updated successfully!")
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.accounts.Delete(r.Context(), sess.Identity.UserID); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Profile deleted successfully!")
	}
	http.Redirect(w, r, "/sign-out", http.StatusSeeOther)
}
