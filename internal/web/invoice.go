package web

import (
	"net/http"
	"strconv"
	"strings"

	"groshop/m/internal/session"
)

func (h *Handler) invoicePage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.render(w, sess, "invoice", page{Current: "invoice"})
}

func (h *Handler) addInvoiceItem(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	customerName := r.PostFormValue("customerName")
	customerNumber := r.PostFormValue("customerNumber")
	itemCode := r.PostFormValue("itemId")

	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(customerNumber) == "" || strings.TrimSpace(itemCode) == "" {
		sess.Flash("error", "All fields are required")
		http.Redirect(w, r, "/invoice", http.StatusSeeOther)
		return
	}

	bill, err := h.billing.AddItem(r.Context(), sess.Bill, strings.TrimSpace(itemCode), customerName, customerNumber)
	if err != nil {
		flashFailure(sess, err)
		sess.Stash("customerName", customerName)
		sess.Stash("customerNumber", customerNumber)
		http.Redirect(w, r, "/invoice", http.StatusSeeOther)
		return
	}

	sess.Bill = bill
	http.Redirect(w, r, "/invoice", http.StatusSeeOther)
}

func (h *Handler) plusQty(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.ParseInt(r.PostFormValue("dbId"), 10, 64)
	if err != nil {
		sess.Flash("error", "Something went wrong, try again!")
		http.Redirect(w, r, "/invoice", http.StatusSeeOther)
		return
	}

	if err := h.billing.Increment(r.Context(), sess.Bill, id); err != nil {
		flashFailure(sess, err)
	}
	http.Redirect(w, r, "/invoice", http.StatusSeeOther)
}

func (h *Handler) minusQty(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.ParseInt(r.PostFormValue("dbId"), 10, 64)
	if err != nil {
		sess.Flash("error", "Something went wrong, try again!")
		http.Redirect(w, r, "/invoice", http.StatusSeeOther)
		return
	}

	bill, err := h.billing.Decrement(sess.Bill, id)
	if err != nil {
		flashFailure(sess, err)
		http.Redirect(w, r, "/invoice", http.StatusSeeOther)
		return
	}

	sess.Bill = bill
	http.Redirect(w, r, "/invoice", http.StatusSeeOther)
}

func (h *Handler) clearInvoice(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	sess.Bill = nil
	http.Redirect(w, r, "/invoice", http.StatusSeeOther)
}

func (h *Handler) printBillPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.render(w, sess, "print_bill", page{Current: "invoice"})
}

func (h *Handler) commitBill(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if sess.Bill == nil {
		http.Redirect(w, r, "/print_bill", http.StatusSeeOther)
		return
	}

	// The bill stays on the session after commit; only the clear action or
	// draining its lines removes it.
	if err := h.billing.Commit(r.Context(), sess.Bill); err != nil {
		flashFailure(sess, err)
	} else {
		sess.Flash("success", "Stock updated successfully!")
	}
	http.Redirect(w, r, "/print_bill", http.StatusSeeOther)
}
