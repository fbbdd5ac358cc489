// Package cli provides the interactive folio admin command-line client.
//
// It restores the last session from the local database, then runs a REPL
// whose commands edit the portfolio through the HTTP API: the About and
// Contact documents, experiences, skills, projects and screenshot uploads.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
