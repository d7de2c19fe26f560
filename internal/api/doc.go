// Package api provides the HTTP/JSON surface of the inkpad backend.
//
// Endpoints:
//
//	POST   /register           create an account
//	POST   /login              authenticate, sets the session_id cookie
//	GET    /logout             drop the session, clears the cookie
//	POST   /note/save          create a note (?view=private|public)
//	POST   /note/upload        extract title/content from a .txt/.md upload
//	GET    /note/{id}          read a note (owner or public)
//	PUT    /note/{id}          edit a note (owner only)
//	DELETE /note/{id}          delete a note (owner only)
//	GET    /user/me            own profile with all notes
//	GET    /user/{username}    public profile (redirects to /user/me for self)
//	GET    /health             liveness probe
//
// Every response body is JSON; failures carry a single human-readable
// message field. Identity is carried by the session_id cookie, resolved
// per request against the session store — there is no middleware-level
// authentication, because half the endpoints accept anonymous callers.
//
// File structure:
//   - server.go: ServerConfig, store interfaces, routing
//   - middleware.go: recovery, request ID, request logging
//   - response.go: JSON response helpers
//   - auth.go: register/login/logout
//   - note.go: note CRUD
//   - upload.go: multipart note upload
//   - user.go: profile endpoints
package api
