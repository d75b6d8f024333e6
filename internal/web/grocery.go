package web

import (
	"net/http"
	"strconv"
	"strings"

	"groshop/m/domain"
	"groshop/m/internal/session"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	// The home view surfaces the items closest to running out first.
	items, err := h.inventory.ListByQuantity(r.Context())
	if err != nil {
		flashFailure(sess, err)
	}
	h.render(w, sess, "home", page{Current: "home", Groceries: items})
}

func (h *Handler) groceryPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	items, err := h.inventory.List(r.Context())
	if err != nil {
		flashFailure(sess, err)
	}
	h.render(w, sess, "grocery", page{Current: "grocery", Groceries: items})
}

// parseGroceryForm validates and converts the grocery form. It returns an
// empty record and false when any required field is blank or a number does
// not parse.
func parseGroceryForm(r *http.Request) (domain.Grocery, bool) {
	code := r.PostFormValue("id")
	name := r.PostFormValue("name")
	mfd := r.PostFormValue("mfd")
	exp := r.PostFormValue("exp")
	qty := r.PostFormValue("qty")
	cp := r.PostFormValue("cp")
	sp := r.PostFormValue("sp")

	for _, field := range []string{code, name, mfd, exp, qty, cp, sp} {
		if strings.TrimSpace(field) == "" {
			return domain.Grocery{}, false
		}
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(qty), 10, 64)
	if err != nil || quantity < 0 {
		return domain.Grocery{}, false
	}
	costPrice, err := strconv.ParseFloat(strings.TrimSpace(cp), 64)
	if err != nil {
		return domain.Grocery{}, false
	}
	salePrice, err := strconv.ParseFloat(strings.TrimSpace(sp), 64)
	if err != nil {
		return domain.Grocery{}, false
	}

	return domain.Grocery{
		Code:      strings.TrimSpace(code),
		Name:      strings.TrimSpace(name),
		MfgDate:   strings.TrimSpace(mfd),
		ExpDate:   strings.TrimSpace(exp),
		Quantity:  quantity,
		CostPrice: costPrice,
		SalePrice: salePrice,
	}, true
}

func (h *Handler) createGrocery(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	item, ok := parseGroceryForm(r)
	if !ok {
		sess.Flash("error", "All fields are mandatory")
		http.Redirect(w, r, "/grocery", http.StatusSeeOther)
		return
	}

	if _, err := h.inventory.Create(r.Context(), item); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Record added successfully!")
	}
	http.Redirect(w, r, "/grocery", http.StatusSeeOther)
}

func (h *Handler) modifyGrocery(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	item, ok := parseGroceryForm(r)
	if !ok {
		sess.Flash("error", "All fields are mandatory")
		http.Redirect(w, r, "/grocery", http.StatusSeeOther)
		return
	}
	id, err := strconv.ParseInt(r.PostFormValue("dbId"), 10, 64)
	if err != nil {
		sess.Flash("error", "Something went wrong, try again!")
		http.Redirect(w, r, "/grocery", http.StatusSeeOther)
		return
	}
	item.ID = id

	if err := h.inventory.Update(r.Context(), item); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Record updated successfully!")
	}
	http.Redirect(w, r, "/grocery", http.StatusSeeOther)
}

func (h *Handler) deleteGrocery(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.ParseInt(r.PostFormValue("itemId"), 10, 64)
	if err != nil {
		sess.Flash("error", "Something went wrong, try again!")
		http.Redirect(w, r, "/grocery", http.StatusSeeOther)
		return
	}

	if err := h.inventory.Delete(r.Context(), id); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Record successfully deleted!")
	}
	http.Redirect(w, r, "/grocery", http.StatusSeeOther)
}
