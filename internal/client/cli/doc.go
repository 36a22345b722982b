// Package cli provides the interactive admin console for the tutoring
// marketplace.
//
// The console is the view layer over the stores: every command reads a store
// snapshot or dispatches a store action, then renders the result as a table.
// Commands that touch the backend go through the admin route guard first.
//
// Typical flow: restore the saved session (or prompt for credentials), then
// run commands such as "pending", "approve <id>", "payments" and
// "setstatus <id> PAID". When the backend rejects the session the HTTP client
// redirects to the login route through Router and the console asks for
// credentials again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
