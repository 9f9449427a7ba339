// Package cli provides the interactive userlist command-line client.
//
// It wires configuration, the remote transport, the in-memory store and the
// loader into a REPL. On start the user list is fetched in the background and
// a watcher probes the service to show online or offline status in the
// prompt.
//
// Commands:
//
//	help              show available commands
//	list | l          print the displayed users
//	search [term]     filter by name, company, role or country; no term clears
//	refresh           fetch the list again (clears the search)
//	add | +           open the add form
//	delete <id>       remove a user
//	exit | quit       leave the program
//
// Inside the add form ":cancel" closes the form and ":clear" resets it.
package cli
