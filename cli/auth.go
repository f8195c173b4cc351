// ABOUTME: Login and logout CLI commands
// ABOUTME: Prompts for the password without echo and persists the token
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"imovia/api"
)

// LoginCommand authenticates and stores the session token.
func LoginCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Login e-mail (required)")
	password := fs.String("password", "", "Password (prompted when omitted)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	pass := *password
	if pass == "" {
		fmt.Fprint(os.Stderr, "Senha: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		pass = string(raw)
	}
	if pass == "" {
		return fmt.Errorf("password is required")
	}

	if err := client.Login(context.Background(), *email, pass); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Autenticado")
	return nil
}

// LogoutCommand clears the stored session.
func LogoutCommand(client *api.Client) error {
	if err := client.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("✓ Sessão encerrada")
	return nil
}
