package cli

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/buildmart/buildmart/pkg/storesdk"
)

func (c *CLI) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			user, err := c.app.Session.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			// The profile comes back from login itself, so role-based hints
			// need no second fetch.
			printf("logged in as %s (%s)", user.Username, user.Role)
			if user.Role.Is(storesdk.RoleAdmin) {
				printf("admin landing: `storefront dashboard`")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (c *CLI) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Session.Logout()
			printf("logged out")
			return nil
		},
	}
}

func (c *CLI) registerCmd() *cobra.Command {
	var req storesdk.RegisterRequest
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != "" {
				parsed, err := storesdk.ParseRole(role)
				if err != nil {
					return err
				}
				req.Role = parsed
			}

			user, err := c.app.Client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			printf("registered %s (%s); run `storefront login`", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&role, "role", "", "account role (defaults to CUSTOMER)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *CLI) whoamiCmd() *cobra.Command {
	var showToken bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Session.Reload(cmd.Context())
			snap := c.app.Session.Snapshot()
			if snap.User == nil {
				return ErrNotLoggedIn
			}

			if err := printJSON(snap.User); err != nil {
				return err
			}

			if showToken {
				pair := c.app.Client.Tokens.Get()
				if pair != nil && pair.Access != "" {
					claims, err := storesdk.DecodeAccessClaims(pair.Access)
					if err != nil {
						return err
					}
					printf("access token jti=%s expires=%s", claims.JTI, claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showToken, "token", false, "also show access token claims")
	return cmd
}

func (c *CLI) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.app.Client.Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(status)
		},
	}
}
