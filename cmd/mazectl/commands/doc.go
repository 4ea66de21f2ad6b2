// Package commands defines the mazectl CLI.
//
// Commands
//
//   - token    Issue an editor token for the maze API
//   - render   Build a maze locally and print it as text or write a PNG
//
// Secrets and issuer default to JWT_SECRET and JWT_ISSUER, read from the
// environment or a .env file in the working directory.
package commands
