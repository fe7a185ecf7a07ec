// Package session implements the client-held session relay: the cookie
// codec, the issuer that writes the cookie set after a successful
// credential check, the guard that resolves an identity from an inbound
// request, and the revoker that clears the set on logout.
//
// There is no server-side session store. The session state lives entirely
// in the browser; the server trusts whatever decodes cleanly.
package session

// Payload is the decoded content of the session cookie: the authenticated
// identity replayed on every request.
type Payload struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
