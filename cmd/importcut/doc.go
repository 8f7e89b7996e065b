// Command importcut is the command-line companion for the Import Cut flow:
// it translates file reference URLs, processes drop payloads, manages the
// per-user import settings, and keeps a local history of import sessions.
package main
