package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"portfolio/internal/client/api"
	"portfolio/internal/client/gate"
	"portfolio/internal/client/session"
	"portfolio/internal/errors"
)

var errNotLoggedIn = errors.New("not logged in, run `portfolioctl login` first")

type app struct {
	client *api.Client
	store  *session.Store
	gate   *gate.Gate
	out    io.Writer
	in     *bufio.Reader

	// readPassword reads a line without echo; swapped in tests.
	readPassword func() (string, error)
}

const usage = `usage: portfolioctl <command> [flags]

commands:
  login      sign in and store the session token
  logout     forget the stored session token
  status     show the session status
  whoami     show the signed-in admin
  projects   list projects
  analytics  show the dashboard summary and per-project views
  messages   list contact messages`

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		if err := a.store.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out")

		return nil
	case "status":
		return a.status(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "projects":
		return a.projects(ctx)
	case "analytics":
		return a.analytics(ctx)
	case "messages":
		return a.messages(ctx)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)

		return nil
	default:
		return errors.Errorf("unknown command %q\n\n%s", args[0], usage)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "admin email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprint(a.out, "Email: ")
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "read email")
		}
		*email = strings.TrimSpace(line)
	}

	fmt.Fprint(a.out, "Password: ")
	password, err := a.readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return errors.Wrap(err, "read password")
	}

	result, err := a.client.Login(ctx, *email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			return errors.New("Invalid email or password")
		}

		return err
	}

	if err := a.store.Login(result.Token); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", result.Username, result.Email)

	return nil
}

func (a *app) status(ctx context.Context) error {
	bootErr := a.store.Bootstrap(ctx)
	st := a.store.State()
	decision := a.gate.Decide(st.Status())

	fmt.Fprintf(a.out, "status: %s\n", st.Status())
	if st.User != nil {
		fmt.Fprintf(a.out, "user:   %s <%s>\n", st.User.Username, st.User.Email)
	}
	if decision.Action == gate.Redirect {
		fmt.Fprintf(a.out, "next:   %s\n", decision.Path)
	}

	return bootErr
}

// requireSession settles the session and applies the route gate.
func (a *app) requireSession(ctx context.Context) error {
	if err := a.store.Bootstrap(ctx); err != nil {
		return errors.Wrap(err, "check session")
	}

	switch decision := a.gate.Decide(a.store.Status()); decision.Action {
	case gate.Render:
		return nil
	case gate.Wait:
		return errors.New("session still loading")
	default:
		return errNotLoggedIn
	}
}

func (a *app) whoami(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	user := a.store.State().User
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.Username, user.Email, user.ID)

	return nil
}

func (a *app) projects(ctx context.Context) error {
	projects, err := a.client.Projects(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tCATEGORY\tFEATURED")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", p.Slug, p.Title, p.Category, p.IsFeatured)
	}

	return w.Flush()
}

func (a *app) analytics(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	return a.store.Guard(ctx, func(ctx context.Context, token string) error {
		summary, err := a.client.Analytics(ctx, token)
		if err != nil {
			return err
		}
		stats, err := a.client.ProjectStats(ctx, token)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "views: %d  projects: %d  posts: %d  as of %s\n\n",
			summary.TotalViews, summary.ProjectCount, summary.BlogCount, summary.LastLogin.Local().Format(time.RFC3339))

		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VIEWS\tSLUG\tTITLE")
		for _, s := range stats {
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.ViewCount, s.Slug, s.Title)
		}

		return w.Flush()
	})
}

func (a *app) messages(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	return a.store.Guard(ctx, func(ctx context.Context, token string) error {
		messages, err := a.client.Messages(ctx, token)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tFROM\tREAD\tMESSAGE")
		for _, m := range messages {
			fmt.Fprintf(w, "%s\t%s <%s>\t%t\t%s\n",
				m.CreatedAt.Local().Format(time.DateTime), m.Name, m.Email, m.Read, firstLine(m.Message, 60))
		}

		return w.Flush()
	})
}

func firstLine(s string, limit int) string {
	s, _, _ = strings.Cut(s, "\n")
	if r := []rune(s); len(r) > limit {
		return string(r[:limit-1]) + "…"
	}

	return s
}
