package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/medalforge/medalforge-go/medalforge"
	"github.com/medalforge/medalforge-go/render"
)

type env struct {
	client *medalforge.Client
	out    io.Writer
	errOut io.Writer
}

func (e *env) print(v interface{}) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type command struct {
	usage string
	run   func(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error
}

var commands = map[string]command{
	"track":       {usage: "track [-silent] [-priority n] [-html] <event> <user-id> [key=value...]", run: runTrack},
	"history":     {usage: "history [-limit n] <user-id>", run: runHistory},
	"medals":      {usage: "medals [list flags]", run: runMedals},
	"medal":       {usage: "medal <medal-id>", run: runMedal},
	"user-medals": {usage: "user-medals [list flags] <user-id>", run: runUserMedals},
	"award":       {usage: "award <user-id> <medal-id>", run: runAward},
	"revoke":      {usage: "revoke <user-id> <medal-id>", run: runRevoke},
	"badges":      {usage: "badges [list flags]", run: runBadges},
	"badge":       {usage: "badge <badge-id>", run: runBadge},
	"user-badges": {usage: "user-badges [list flags] <user-id>", run: runUserBadges},
	"register":    {usage: "register [-name n] [-email e] <user-id>", run: runRegister},
	"user":        {usage: "user <user-id>", run: runUser},
	"render":      {usage: "render [-container] [list flags] <user-id>", run: runRender},
}

func newFlagSet(name, usage string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: medalforge %s\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args and checks the number of positional arguments.
func parse(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < minArgs || (maxArgs >= 0 && fs.NArg() > maxArgs) {
		fs.Usage()
		return nil, errUsage
	}
	return fs.Args(), nil
}

type listFlags struct {
	progress bool
	unlocked bool
	rarity   string
}

func (l *listFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&l.progress, "progress", false, "include progress")
	fs.BoolVar(&l.unlocked, "unlocked", false, "only unlocked")
	fs.StringVar(&l.rarity, "rarity", "", "comma separated rarity filter, e.g. rare,epic")
}

func (l *listFlags) options() *medalforge.ListOptions {
	opts := &medalforge.ListOptions{}
	if l.progress {
		opts.IncludeProgress = medalforge.Bool(true)
	}
	if l.unlocked {
		opts.OnlyUnlocked = medalforge.Bool(true)
	}
	for _, r := range strings.Split(l.rarity, ",") {
		if r = strings.TrimSpace(r); r != "" {
			opts.RarityFilter = append(opts.RarityFilter, medalforge.Rarity(r))
		}
	}
	return opts
}

func parseMetadata(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	metadata := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid metadata %q, expected key=value", pair)
		}
		var v interface{}
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			v = value
		}
		metadata[key] = v
	}
	return metadata, nil
}

func runTrack(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	silent := fs.Bool("silent", false, "do not render unlocks")
	priority := fs.Int("priority", 0, "event priority")
	html := fs.Bool("html", false, "print the unlock modal HTML instead of JSON")
	pos, err := parse(fs, args, 2, -1)
	if err != nil {
		return err
	}

	metadata, err := parseMetadata(pos[2:])
	if err != nil {
		return err
	}

	resp, err := e.client.Events.Track(ctx, pos[0], pos[1], metadata, &medalforge.TrackOptions{
		Silent:   *silent,
		Priority: *priority,
	})
	if err != nil {
		return err
	}

	if *html && !*silent {
		item := resp.Medal.Item()
		if item == nil {
			item = resp.Badge.Item()
		}
		if item != nil {
			e.client.Viewer.SetTarget(render.NewWriterTarget(e.out))
			_, err = e.client.Viewer.ShowModal(item, nil)
			return err
		}
	}
	return e.print(resp)
}

func runHistory(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	limit := fs.Int("limit", medalforge.DefaultHistoryLimit, "maximum number of events")
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	history, err := e.client.Events.GetHistory(ctx, pos[0], *limit)
	if err != nil {
		return err
	}
	return e.print(history)
}

func runMedals(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	var lf listFlags
	lf.register(fs)
	if _, err := parse(fs, args, 0, 0); err != nil {
		return err
	}

	medals, err := e.client.Medals.List(ctx, lf.options())
	if err != nil {
		return err
	}
	return e.print(medals)
}

func runMedal(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	medal, err := e.client.Medals.Get(ctx, pos[0])
	if err != nil {
		return err
	}
	return e.print(medal)
}

func runUserMedals(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	var lf listFlags
	lf.register(fs)
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	medals, err := e.client.UserMedals.GetAll(ctx, pos[0], lf.options())
	if err != nil {
		return err
	}
	return e.print(medals)
}

func runAward(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	pos, err := parse(fs, args, 2, 2)
	if err != nil {
		return err
	}
	return e.client.UserMedals.Award(ctx, pos[0], pos[1])
}

func runRevoke(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	pos, err := parse(fs, args, 2, 2)
	if err != nil {
		return err
	}
	return e.client.UserMedals.Revoke(ctx, pos[0], pos[1])
}

func runBadges(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	var lf listFlags
	lf.register(fs)
	if _, err := parse(fs, args, 0, 0); err != nil {
		return err
	}

	badges, err := e.client.Badges.List(ctx, lf.options())
	if err != nil {
		return err
	}
	return e.print(badges)
}

func runBadge(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	badge, err := e.client.Badges.Get(ctx, pos[0])
	if err != nil {
		return err
	}
	return e.print(badge)
}

func runUserBadges(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	var lf listFlags
	lf.register(fs)
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	badges, err := e.client.Badges.GetUserBadges(ctx, pos[0], lf.options())
	if err != nil {
		return err
	}
	return e.print(badges)
}

func runRegister(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	resp, err := e.client.Users.Register(ctx, medalforge.RegisterUserRequest{
		ID:    pos[0],
		Name:  *name,
		Email: *email,
	})
	if err != nil {
		return err
	}
	return e.print(resp)
}

func runUser(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	user, err := e.client.Users.Get(ctx, pos[0])
	if err != nil {
		return err
	}
	return e.print(user)
}

// runRender prints a user's medals as an HTML gallery or inline grid.
func runRender(ctx context.Context, e *env, fs *flag.FlagSet, args []string) error {
	container := fs.Bool("container", false, "render an inline grid instead of a gallery overlay")
	var lf listFlags
	lf.register(fs)
	pos, err := parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	medals, err := e.client.UserMedals.GetAll(ctx, pos[0], lf.options())
	if err != nil {
		return err
	}

	items := make([]render.Item, 0, len(medals))
	for i := range medals {
		items = append(items, *medals[i].Item())
	}

	e.client.Viewer.SetTarget(render.NewWriterTarget(e.out))
	if *container {
		_, err = e.client.Viewer.ShowContainer(items, nil)
	} else {
		_, err = e.client.Viewer.ShowGallery(items, nil)
	}
	return err
}
