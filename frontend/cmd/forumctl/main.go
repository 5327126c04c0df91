package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/itchan-dev/forum/frontend/internal/apiclient"
	"github.com/itchan-dev/forum/frontend/internal/cli/output"
	"github.com/itchan-dev/forum/frontend/internal/markdown"
	"github.com/itchan-dev/forum/frontend/internal/setup"
	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/frontend/internal/tokenstore"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const usageText = `usage: forumctl [--api url] [--token-db path] [--format table|json|plain|quiet] <command>

commands:
  threads [--category id] [--search text]
  thread <id>
  categories
  users
  leaderboard
  login --email e --password p
  register --name n --email e --password p
  logout
  whoami
  vote <thread-id> <post-id> <up|down|neutral>`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	store  *store.Store
	out    io.Writer
	format string
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	public := config.FromEnv()

	fs := flag.NewFlagSet("forumctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiURL := fs.String("api", public.ApiBaseURL, "Forum API base url")
	tokenDB := fs.String("token-db", public.TokenDBPath, "token database path")
	format := fs.String("format", "", "output format")
	logLevel := fs.String("log-level", "warn", "log level")
	timeout := fs.Duration("timeout", public.RequestTimeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%s", err, usageText)
	}
	if fs.NArg() == 0 {
		return errors.New(usageText)
	}
	logger.Initialize(*logLevel, false)

	tokens, err := tokenstore.Open(*tokenDB)
	if err != nil {
		return err
	}
	defer tokens.Close()

	a := &app{
		store:  store.New(apiclient.New(*apiURL, *timeout), tokens),
		out:    stdout,
		format: *format,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "threads":
		return a.threads(ctx, rest)
	case "thread":
		return a.thread(ctx, rest)
	case "categories":
		return a.categories(ctx)
	case "users":
		return a.users(ctx)
	case "leaderboard":
		return a.leaderboard(ctx)
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		return a.store.Dispatch(ctx, store.Logout{})
	case "whoami":
		return a.whoami(ctx)
	case "vote":
		return a.vote(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usageText)
	}
}

// load fills the thread list and fails if it could not be fetched.
func (a *app) load(ctx context.Context) (store.State, error) {
	setup.Bootstrap(ctx, a.store)
	st := a.store.Snapshot()
	if st.Threads.Error != "" {
		return st, &internal_errors.RemoteError{Message: st.Threads.Error}
	}
	return st, nil
}

func (a *app) threads(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("threads", flag.ContinueOnError)
	category := fs.String("category", "", "category id")
	search := fs.String("search", "", "search text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.load(ctx); err != nil {
		return err
	}
	if *category != "" {
		if err := a.store.Dispatch(ctx, store.NavigateToCategory{CategoryId: domain.CategoryId(*category)}); err != nil {
			return err
		}
	}
	if err := a.store.Dispatch(ctx, store.SetSearchQuery{Query: *search}); err != nil {
		return err
	}

	threads := a.store.Snapshot().FilteredThreads()
	return output.Print(a.out, a.format, threads, threadTable(threads))
}

func (a *app) thread(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: forumctl thread <id>")
	}
	if _, err := a.load(ctx); err != nil {
		return err
	}
	thread, err := a.store.LoadThreadDetail(ctx, store.LoadThreadDetail{ThreadId: domain.ThreadId(args[0])})
	if err != nil {
		return err
	}
	if thread == nil {
		return internal_errors.NotFoundf("thread %s", args[0])
	}
	return output.Print(a.out, a.format, thread, postTable(thread.Posts))
}

func (a *app) categories(ctx context.Context) error {
	st, err := a.load(ctx)
	if err != nil {
		return err
	}
	table := output.Table{Header: []string{"ID", "NAME", "ICON", "THREADS", "POSTS"}}
	for _, c := range st.Threads.Categories {
		table.Rows = append(table.Rows, []string{
			string(c.Id), c.Name, c.IconKey, strconv.Itoa(c.ThreadCount), strconv.Itoa(c.PostCount),
		})
	}
	return output.Print(a.out, a.format, st.Threads.Categories, table)
}

func (a *app) users(ctx context.Context) error {
	if err := a.store.Dispatch(ctx, store.LoadUsers{}); err != nil {
		return err
	}
	users := a.store.Snapshot().Users.Users
	table := output.Table{Header: []string{"ID", "NAME", "ROLE", "POSTS", "JOINED"}}
	for _, u := range users {
		table.Rows = append(table.Rows, []string{string(u.Id), u.Name, string(u.Role), strconv.Itoa(u.PostCount), u.JoinedDate})
	}
	return output.Print(a.out, a.format, users, table)
}

func (a *app) leaderboard(ctx context.Context) error {
	if err := a.store.Dispatch(ctx, store.LoadLeaderboard{}); err != nil {
		return err
	}
	entries := a.store.Snapshot().RankedLeaderboard()
	table := output.Table{Header: []string{"RANK", "NAME", "SCORE"}}
	for i, e := range entries {
		table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), e.User.Name, strconv.Itoa(e.Score)})
	}
	return output.Print(a.out, a.format, entries, table)
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.store.Dispatch(ctx, store.Login{LoginRequest: api.LoginRequest{Email: *email, Password: *password}}); err != nil {
		return err
	}
	return a.printSession()
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req := api.RegisterRequest{Name: *name, Email: *email, Password: *password}
	if err := a.store.Dispatch(ctx, store.Register{RegisterRequest: req}); err != nil {
		return err
	}
	return a.printSession()
}

func (a *app) whoami(ctx context.Context) error {
	if err := a.store.Dispatch(ctx, store.HydrateSession{}); err != nil {
		return err
	}
	return a.printSession()
}

func (a *app) printSession() error {
	session := a.store.Snapshot().Auth.Session
	if !session.Authenticated || session.CurrentUser == nil {
		return &internal_errors.AuthRequiredError{}
	}
	u := session.CurrentUser
	table := output.Table{
		Header: []string{"ID", "NAME", "ROLE"},
		Rows:   [][]string{{string(u.Id), u.Name, string(u.Role)}},
	}
	return output.Print(a.out, a.format, session, table)
}

func (a *app) vote(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: forumctl vote <thread-id> <post-id> <up|down|neutral>")
	}
	threadId, postId := domain.ThreadId(args[0]), domain.PostId(args[1])

	if err := a.store.Dispatch(ctx, store.HydrateSession{}); err != nil {
		return err
	}
	if _, err := a.store.LoadThreadDetail(ctx, store.LoadThreadDetail{ThreadId: threadId}); err != nil {
		return err
	}
	if err := a.store.Dispatch(ctx, store.VotePost{ThreadId: threadId, PostId: postId, Vote: domain.VoteType(args[2])}); err != nil {
		return err
	}

	selected := a.store.Snapshot().Threads.Selected
	if selected == nil || selected.Id != threadId {
		return internal_errors.NotFoundf("thread %s", threadId)
	}
	_, post := selected.FindPost(postId)
	if post == nil {
		return internal_errors.NotFoundf("post %s", postId)
	}
	return output.Print(a.out, a.format, post, postTable([]*domain.Post{post}))
}

func threadTable(threads []*domain.Thread) output.Table {
	table := output.Table{Header: []string{"ID", "AUTHOR", "CATEGORY", "TITLE", "SCORE", "REPLIES", "CREATED"}}
	for _, t := range threads {
		score := 0
		if root := t.Root(); root != nil {
			score = root.UpvoteCount - root.DownvoteCount
		}
		table.Rows = append(table.Rows, []string{
			string(t.Id),
			t.Author.Name,
			string(t.CategoryId),
			output.Truncate(t.Title, 48),
			strconv.Itoa(score),
			strconv.Itoa(t.ReplyCount()),
			t.CreatedAt.Format(time.DateTime),
		})
	}
	return table
}

func postTable(posts []*domain.Post) output.Table {
	table := output.Table{Header: []string{"ID", "AUTHOR", "UP", "DOWN", "TIME", "CONTENT"}}
	for _, p := range posts {
		if p.IsPlaceholder {
			continue
		}
		table.Rows = append(table.Rows, []string{
			string(p.Id),
			p.Author.Name,
			strconv.Itoa(p.UpvoteCount),
			strconv.Itoa(p.DownvoteCount),
			p.Timestamp.Format(time.DateTime),
			output.Truncate(markdown.PlainText(p.Content), 60),
		})
	}
	return table
}
