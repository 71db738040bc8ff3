package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/client"
	"github.com/mzansi-thrift/storefront/client/session"
)

func printSignedIn(cmd *cobra.Command, s session.Session) {
	p, _ := s.Profile()
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s, id %d)\n", s.DisplayName(), s.Role(), p.ID)
}

func newRegisterCmd() *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a buyer account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if _, err := a.client.Register(ctx, req); err != nil {
					return err
				}
				printSignedIn(cmd, a.client.Session())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "South African phone number (required)")
	return cmd
}

func newSellerRegisterCmd() *cobra.Command {
	var req client.SellerRegisterRequest

	cmd := &cobra.Command{
		Use:   "seller-register",
		Short: "Create a seller account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if _, err := a.client.SellerRegister(ctx, req); err != nil {
					return err
				}
				printSignedIn(cmd, a.client.Session())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.BusinessName, "business-name", "", "Business name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "South African phone number (required)")
	cmd.Flags().StringVar(&req.BusinessType, "business-type", "", "Business type (optional)")
	return cmd
}

func loginCmd(use, short string, login func(*client.Client, context.Context, client.Credentials) (client.Profile, error)) *cobra.Command {
	var creds client.Credentials

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if _, err := login(a.client, ctx, creds); err != nil {
					return err
				}
				printSignedIn(cmd, a.client.Session())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Password (required)")
	return cmd
}

func newLoginCmd() *cobra.Command {
	return loginCmd("login", "Sign in as a buyer", (*client.Client).Login)
}

func newSellerLoginCmd() *cobra.Command {
	return loginCmd("seller-login", "Sign in as a seller", (*client.Client).SellerLogin)
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out; the local session is cleared even if the server call fails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				err := a.client.Logout(ctx)
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return err
			})
		},
	}
}

func newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Ask the server who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				s, err := a.client.GetCurrentUser(ctx)
				if err != nil {
					return err
				}
				printSignedIn(cmd, s)
				return nil
			})
		},
	}
}

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the locally saved session without calling the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				s := a.client.Session()
				if s.IsAnonymous() {
					fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
					return nil
				}
				printSignedIn(cmd, s)
				return nil
			})
		},
	}
}
