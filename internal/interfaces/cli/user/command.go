// Package user holds account administration commands.
package user

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"campus/internal/application/user/dto"
	"campus/internal/application/user/usecases"
	"campus/internal/infrastructure/auth"
	"campus/internal/infrastructure/database"
	"campus/internal/infrastructure/repository"
	"campus/internal/interfaces/cli/bootstrap"
	"campus/internal/shared/authorization"
	"campus/internal/shared/constants"
)

var (
	env      string
	email    string
	fullName string
	password string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.AddCommand(newCreateSuperuserCommand())

	return cmd
}

func newCreateSuperuserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create an administrator account",
		Long:  `Create an administrator account. The password is prompted for when --password is not given.`,
		RunE:  runCreateSuperuser,
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&password, "password", "", "Password, prompted for when empty")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runCreateSuperuser(cmd *cobra.Command, args []string) error {
	if password == "" {
		p, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		password = p
	}

	e, err := bootstrap.Setup(bootstrap.GinMode(env))
	if err != nil {
		return err
	}
	defer e.Close()

	hasher := auth.NewBcryptPasswordHasher(e.Config.Auth.Password)
	users := repository.NewUserRepository(database.Get(), e.Logger)
	created, err := CreateSuperuser(cmd.Context(), usecases.NewCreateUserUseCase(users, hasher, e.Logger), email, fullName, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Administrator %s created (id %d)\n", created.Email, created.ID)
	return nil
}

// CreateSuperuser creates an admin account through the regular create use
// case so the same validation applies.
func CreateSuperuser(ctx context.Context, uc *usecases.CreateUserUseCase, email, fullName, password string) (*dto.UserResponse, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}
	return uc.Execute(ctx, dto.CreateUserRequest{
		Email:    strings.TrimSpace(email),
		FullName: strings.TrimSpace(fullName),
		Password: password,
		Role:     authorization.RoleAdmin.String(),
	})
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
