package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/session"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

// Register prompts for account details and creates the account. An employer
// account additionally asks for the company name.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	roleStr, err := GetSimpleText(a.reader, "Role (jobseeker/employer)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(roleStr)

	var companyName string
	if role == models.RoleEmployer {
		companyName, err = GetSimpleText(a.reader, "Company name", a.out)
		if err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, session.RegisterData{
		Email:       email,
		Password:    password,
		Name:        name,
		Role:        role,
		CompanyName: companyName,
	})
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrEmailTaken):
			fmt.Fprintln(a.out, "That email is already registered.")
		case errors.Is(err, shared.ErrValidation):
			fmt.Fprintln(a.out, "Role must be 'jobseeker' or 'employer'.")
		default:
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are now logged in.\n", user.Name)
	return nil
}

// Login prompts for credentials and establishes the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, shared.ErrUnknownEmail) {
			fmt.Fprintln(a.out, "Login failed: no account with that email.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s.\n", user.Name)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
