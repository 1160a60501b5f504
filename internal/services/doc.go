// Package services defines the error taxonomy shared by external
// collaborator clients. Collaborator failures surface as typed errors to the
// caller; nothing in this tree retries internally.
package services
