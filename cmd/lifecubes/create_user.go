package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmynk/lifecubes/internal/auth"
	"github.com/mmynk/lifecubes/internal/storage/sqlite"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

var errPasswordMismatch = errors.New("passwords do not match")

type createUserOptions struct {
	reg   auth.Registration
	birth string
}

func newCreateUserCmd(root *rootOptions) *cobra.Command {
	opts := &createUserOptions{}
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account in the configured database",
		Long: `Create an account with its profile. The password is read from the terminal
without echo, or as the first line of stdin when it is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			birth, err := weekgrid.ParseDate(opts.birth)
			if err != nil {
				return err
			}
			opts.reg.BirthDate = birth

			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.reg.Password = password

			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			var authOpts []auth.Option
			if cfg.Auth.BcryptCost > 0 {
				authOpts = append(authOpts, auth.WithCost(cfg.Auth.BcryptCost))
			}
			return createUser(cmd.Context(), cmd.OutOrStdout(), auth.NewPasswordAuthenticator(store, authOpts...), opts.reg)
		},
	}
	cmd.Flags().StringVarP(&opts.reg.Username, "username", "u", "", "login name")
	cmd.Flags().StringVar(&opts.reg.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.reg.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&opts.reg.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&opts.birth, "birth", "", "birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("birth")
	return cmd
}

func createUser(ctx context.Context, w io.Writer, authenticator auth.Authenticator, reg auth.Registration) error {
	user, err := authenticator.Register(ctx, reg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Created user %s (%s)\n", user.Username, user.ID)
	return err
}

// readPassword prompts twice on a terminal. Otherwise it reads one line.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fd := int(f.Fd())
	fmt.Fprint(prompt, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprint(prompt, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errPasswordMismatch
	}
	return string(first), nil
}
