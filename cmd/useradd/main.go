// Command useradd creates or replaces a login for the reservations service.
//
//	useradd -username laura -role branch_manager -branch Centro -address "Av. Siempre Viva 742"
//
// The password is read from the terminal without echo, or from the first line of stdin when piped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"branch-reservations/internal/infra/db"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/infra/uow"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/commands"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "useradd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin *os.File, stdout io.Writer) error {
	in, err := parseArgs(args)
	if err != nil {
		return err
	}

	pw, err := promptPassword(stdin, stdout)
	if err != nil {
		return err
	}
	in.Password = pw

	_ = godotenv.Load()
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return fmt.Errorf("failed to read database settings: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if dbCfg.MigrateOnStart {
		if err := db.Migrate(dbCfg); err != nil {
			return err
		}
	}
	pool, cleanup, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// upserting never signs tokens
	auth := commands.NewAuthCommands(uow.NewPostgresUoW(pool, pgsql.New()), nil)
	id, err := auth.UpsertUser(ctx, in)
	if err != nil {
		if errs.Is(err, commands.ErrUserValidation) {
			return errors.New(errs.Hint(err, "invalid user data"))
		}
		return err
	}

	fmt.Fprintf(stdout, "user %s saved (%s, %s)\n", in.Username, id, in.Branch)
	return nil
}

func parseArgs(args []string) (commands.UpsertUserInput, error) {
	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	var in commands.UpsertUserInput
	fs.StringVar(&in.Username, "username", "", "login name (required)")
	fs.StringVar(&in.DisplayName, "name", "", "name shown on reservations; defaults to the username")
	fs.StringVar(&in.Role, "role", "branch_staff", "admin, branch_manager or branch_staff")
	fs.StringVar(&in.Branch, "branch", "", "home branch (required)")
	fs.StringVar(&in.BranchAddress, "address", "", "branch address printed in pickup notices")
	fs.StringVar(&in.BranchHours, "hours", "", "branch opening hours printed in pickup notices")
	fs.StringVar(&in.BranchPhone, "phone", "", "branch phone printed in pickup notices")
	if err := fs.Parse(args); err != nil {
		return in, err
	}
	if in.Username == "" || in.Branch == "" {
		fs.Usage()
		return in, errors.New("-username and -branch are required")
	}
	return in, nil
}
