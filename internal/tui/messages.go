package tui

import (
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
)

// NavigateTo asks [RootModel] to switch pages. The target passes through
// the access guard first. A non-nil Payload is delivered to the new page
// after its Init.
type NavigateTo struct {
	Route   service.Route
	Payload any
}

// Notice is a one-line message shown on the page that receives it.
type Notice struct {
	Text  string
	Error bool
}

type sessionExpiredMsg struct{}

type restoredMsg struct {
	session models.Session
}

type logoutMsg struct{}

// authenticatedMsg tells the router a session now exists.
type authenticatedMsg struct{}

type refreshResultMsg struct {
	err error
}

type loginDoneMsg struct {
	result models.LoginResult
}

type registerDoneMsg struct {
	result models.LoginResult
	err    error
}

type sweetsLoadedMsg struct {
	err error
}

type purchaseDoneMsg struct {
	sweet models.Sweet
	err   error
}

type mutationDoneMsg struct {
	op    string
	sweet models.Sweet
	err   error
}

type clearStatusMsg struct {
	seq int
}
