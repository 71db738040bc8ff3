package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/client"
	"github.com/mzansi-thrift/storefront/client/session"
	"github.com/mzansi-thrift/storefront/internal/config"
)

// cookiesKey stores the API session cookie between invocations.
const cookiesKey = "cookies"

// app is one invocation's client plus the store its session lives in.
type app struct {
	client *client.Client
	store  session.Store
	close  func() error
}

// openApp builds a client from cfg, restores the saved session and cookies.
func openApp(ctx context.Context) (*app, error) {
	var store session.Store = session.NewMemoryStore()
	closeStore := func() error { return nil }
	if cfg.SessionDB != config.SessionInMemory {
		s, err := session.OpenSQLite(ctx, cfg.SessionDB)
		if err != nil {
			return nil, fmt.Errorf("open session db: %w", err)
		}
		store, closeStore = s, s.Close
	}

	manager := session.NewManager(store)
	if _, err := manager.Restore(ctx); err != nil {
		_ = closeStore()
		return nil, err
	}

	opts := []client.Option{
		client.WithTimeout(cfg.RequestTimeout),
		client.WithDebugLogging(cfg.Debug),
		client.WithSessionManager(manager),
		client.WithAuthRequiredHandler(func(context.Context) {
			log.Warn().Msg("not signed in; run `storefront login` or `storefront seller-login`")
		}),
	}
	if cfg.AuthToken != "" {
		opts = append(opts, client.WithAuthToken(cfg.AuthToken))
	}
	c, err := client.New(cfg.BaseURL, opts...)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	a := &app{client: c, store: store}
	a.close = func() error {
		_ = c.Close()
		return closeStore()
	}
	if err := a.loadCookies(ctx); err != nil {
		log.Warn().Err(err).Msg("ignoring saved cookies")
	}
	return a, nil
}

type savedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (a *app) loadCookies(ctx context.Context) error {
	raw, ok, err := a.store.Get(ctx, cookiesKey)
	if err != nil || !ok {
		return err
	}
	var saved []savedCookie
	if err := json.Unmarshal(raw, &saved); err != nil {
		return err
	}
	cookies := make([]*http.Cookie, 0, len(saved))
	for _, s := range saved {
		cookies = append(cookies, &http.Cookie{Name: s.Name, Value: s.Value})
	}
	a.client.SetCookies(cookies)
	return nil
}

// saveCookies persists the jar, or forgets it once signed out.
func (a *app) saveCookies(ctx context.Context) {
	var err error
	if a.client.Session().IsAnonymous() {
		err = a.store.Delete(ctx, cookiesKey)
	} else {
		saved := make([]savedCookie, 0)
		for _, c := range a.client.Cookies() {
			saved = append(saved, savedCookie{Name: c.Name, Value: c.Value})
		}
		var raw []byte
		if raw, err = json.Marshal(saved); err == nil {
			err = a.store.Put(ctx, cookiesKey, raw)
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to save cookies")
	}
}

// withApp opens the app for one command and persists cookies afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	err = fn(ctx, a)
	a.saveCookies(context.WithoutCancel(ctx))
	return err
}

// rawCmd builds a command that calls fn and prints the JSON it returns.
// Read-only commands are retried on recoverable errors.
func rawCmd(use, short string, readOnly bool, fn func(ctx context.Context, c *client.Client) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				call := func() (json.RawMessage, error) { return fn(ctx, a.client) }

				start := time.Now()
				var (
					raw json.RawMessage
					err error
				)
				if readOnly {
					raw, err = retry(ctx, use, call)
				} else {
					raw, err = call()
				}
				elapsed := time.Since(start)

				if err != nil {
					log.Debug().Err(err).Str("command", use).Dur("elapsed", elapsed).Msg("command failed")
					return err
				}
				log.Debug().Str("command", use).Dur("elapsed", elapsed).Int("bytes", len(raw)).Msg("command completed")
				return printJSON(cmd.OutOrStdout(), raw)
			})
		},
	}
}

// retry runs fn until it succeeds, fails irrecoverably, or cfg.Retries
// retries have been spent.
func retry(ctx context.Context, op string, fn func() (json.RawMessage, error)) (json.RawMessage, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second
	exp.Reset()

	var attempts uint64
	for {
		raw, err := fn()
		if err == nil || !client.IsRecoverable(err) || attempts >= cfg.Retries {
			return raw, err
		}
		attempts++
		wait := exp.NextBackOff()
		log.Warn().Err(err).Str("command", op).Uint64("attempt", attempts).Dur("wait", wait).Msg("retrying")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, err
		}
	}
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// parseData reads a JSON body given inline or as @path.
func parseData(data string) (json.RawMessage, error) {
	var b []byte
	if strings.HasPrefix(data, "@") {
		var err error
		if b, err = os.ReadFile(strings.TrimPrefix(data, "@")); err != nil {
			return nil, err
		}
	} else {
		b = []byte(data)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("--data is not valid JSON")
	}
	return json.RawMessage(b), nil
}

// openFiles opens paths as media files. The returned func closes them all.
func openFiles(paths []string) ([]client.MediaFile, func(), error) {
	var files []client.MediaFile
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, f)
		files = append(files, client.MediaFile{Name: p, Content: f})
	}
	return files, closeAll, nil
}

// idFlag registers a required int64 flag.
func idFlag(cmd *cobra.Command, p *int64, name, usage string) {
	cmd.Flags().Int64Var(p, name, 0, fmt.Sprintf("%s (required)", usage))
	_ = cmd.MarkFlagRequired(name)
}

// dataFlag registers the required --data JSON body flag.
func dataFlag(cmd *cobra.Command, p *string, usage string) {
	cmd.Flags().StringVar(p, "data", "", usage+" (required)")
	_ = cmd.MarkFlagRequired("data")
}

// dataCmd builds a write command whose body comes from --data.
func dataCmd(use, short, usage string, fn func(ctx context.Context, c *client.Client, body json.RawMessage) (json.RawMessage, error)) *cobra.Command {
	var data string
	cmd := rawCmd(use, short, false, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
		body, err := parseData(data)
		if err != nil {
			return nil, err
		}
		return fn(ctx, c, body)
	})
	dataFlag(cmd, &data, usage)
	return cmd
}
