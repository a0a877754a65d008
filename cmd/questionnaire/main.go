package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linskybing/client-intake/internal/client"
	"github.com/linskybing/client-intake/internal/config"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/tui"
)

const usage = `Usage:
  questionnaire fill
  questionnaire admin login [-u username]
  questionnaire admin list [-q term]
  questionnaire admin show <id>
  questionnaire admin delete <id>
  questionnaire admin export [-q term] [-o dir]
  questionnaire admin audit [-a action] [-n limit]
  questionnaire admin logout
`

func main() {
	config.LoadConfig()
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	c := client.NewFromConfig()
	driver := tui.NewSurveyDriver()

	switch args[0] {
	case "fill":
		return fill(ctx, driver, c)
	case "admin":
		return admin(ctx, driver, c, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func fill(ctx context.Context, driver tui.PromptDriver, c *client.Client) error {
	catalog, err := questionnaire.DefaultCatalog()
	if err != nil {
		return err
	}
	receipt, err := tui.NewWizardRunner(driver, catalog, c).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Thank you! Submission %s received.\n", receipt.ID)
	return nil
}

func admin(ctx context.Context, driver tui.PromptDriver, c *client.Client, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing admin command")
	}

	view := tui.NewAdminView(driver, os.Stdout, c)
	sessionPath := tui.DefaultSessionPath()
	session, err := tui.LoadSession(sessionPath)
	if err != nil && !errors.Is(err, tui.ErrNoSession) {
		return err
	}

	fs := flag.NewFlagSet("admin "+args[0], flag.ContinueOnError)
	username := fs.String("u", config.AdminUsername, "admin username")
	term := fs.String("q", "", "search term (name, email, phone, company)")
	dir := fs.String("o", ".", "directory for the exported CSV")
	action := fs.String("a", "", "audit action (login, login_failed, delete, export)")
	limit := fs.Int("n", 50, "number of audit entries")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "login":
		s, err := view.Login(ctx, *username)
		if err != nil {
			return err
		}
		if err := tui.SaveSession(sessionPath, s); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s until %s\n", s.Username, s.ExpiresAt.Local().Format(time.RFC1123))
		return nil
	case "logout":
		if err := os.Remove(sessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	case "list":
		return view.List(ctx, session, *term)
	case "show":
		id, err := oneArg(fs)
		if err != nil {
			return err
		}
		return view.Show(ctx, session, id)
	case "delete":
		id, err := oneArg(fs)
		if err != nil {
			return err
		}
		_, err = view.Delete(ctx, session, id)
		return err
	case "export":
		_, err := view.Export(ctx, session, *term, *dir)
		if errors.Is(err, tui.ErrNoSession) {
			return errors.New("export needs an admin session, run: questionnaire admin login")
		}
		return err
	case "audit":
		err := view.Audit(ctx, session, *action, *limit)
		if errors.Is(err, tui.ErrNoSession) {
			return errors.New("audit needs an admin session, run: questionnaire admin login")
		}
		return err
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

func oneArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s needs exactly one id", fs.Name())
	}
	return fs.Arg(0), nil
}
