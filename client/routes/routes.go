// Package routes names the views of the client and the navigation hook.
package routes

import "billed.app/client/session"

const (
	Login     = "/"
	Bills     = "#employee/bills"
	NewBill   = "#employee/bill/new"
	Dashboard = "#admin/dashboard"
)

// Navigator swaps the displayed view.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// OrNowhere returns nav, or a navigator that stays on the current view when
// nav is nil.
func OrNowhere(nav Navigator) Navigator {
	if nav == nil {
		return NavigatorFunc(func(string) {})
	}
	return nav
}

// Home is the landing view for s.
func Home(s session.Session) string {
	switch {
	case s.IsEmployee():
		return Bills
	case s.IsAdmin():
		return Dashboard
	default:
		return Login
	}
}
