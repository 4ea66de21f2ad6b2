package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/wallmaze/api/identity"
	"github.com/beka-birhanu/wallmaze/infrastruture/token"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		secret  string
		issuer  string
		subject string
		scopes  []string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an editor token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = envOr("JWT_SECRET", "")
			}
			if issuer == "" {
				issuer = envOr("JWT_ISSUER", "")
			}
			if secret == "" || issuer == "" {
				return errors.New("secret and issuer are required (--secret/--issuer or JWT_SECRET/JWT_ISSUER)")
			}

			tok, err := token.NewJwtService(secret, issuer).Generate(subject, scopes, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default $JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", "", "token issuer (default $JWT_ISSUER)")
	cmd.Flags().StringVar(&subject, "subject", "editor", "token subject")
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{identity.ScopeMazeWrite}, "granted scopes")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
