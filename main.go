package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/cupogo/andvari/utils/zlog"

	"github.com/liut/askpad/htdocs"
	"github.com/liut/askpad/pkg/services/answer"
	"github.com/liut/askpad/pkg/services/stores"
	"github.com/liut/askpad/pkg/settings"
	"github.com/liut/askpad/pkg/web"
)

func main() {
	_ = godotenv.Load()

	var zlogger *zap.Logger
	if settings.InDevelop() {
		zlogger, _ = zap.NewDevelopment()
	} else {
		zlogger, _ = zap.NewProduction()
	}
	sugar := zlogger.Sugar()
	zlog.Set(sugar)

	app := &cli.App{
		Name:           strings.ToLower(settings.Name),
		Usage:          "ask questions, keep the answers",
		Version:        settings.Current.Version,
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve the web UI and the ask API",
				Action: serve,
			},
			{
				Name:      "ask",
				Usage:     "ask one question and record the pair",
				ArgsUsage: "<question>",
				Action:    askOnce,
			},
			{
				Name:  "history",
				Usage: "browse the recorded pairs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "print entries, newest first",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Aliases: []string{"n"}},
						},
						Action: historyList,
					},
					{
						Name:   "clear",
						Usage:  "drop all entries",
						Action: historyClear,
					},
				},
			},
			{
				Name:  "env",
				Usage: "show the configuration environment",
				Action: func(c *cli.Context) error {
					return settings.Usage()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		sugar.Fatalw("run fail", "err", err)
	}
}

func serve(c *cli.Context) error {
	sugar := zlog.Get()

	srv := web.New(web.Config{
		Addr:       settings.Current.HTTPListen,
		Debug:      settings.InDevelop(),
		DocHandler: http.FileServer(http.FS(htdocs.FS())),
	})

	idleClosed := make(chan struct{})
	ctx := context.Background()
	go func() {
		quit := make(chan os.Signal, 2)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		sugar.Info("shuting down server...")
		if err := srv.Stop(ctx); err != nil {
			sugar.Infow("server shutdown:", "err", err)
		}
		close(idleClosed)
	}()

	if err := srv.Serve(ctx); err != nil {
		sugar.Infow("serve fail", "err", err)
	}

	<-idleClosed
	return nil
}

func askOnce(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	preset, _ := stores.LoadPreset()
	asker := answer.New(preset)

	text, err := asker.Ask(c.Context, question)
	if err != nil {
		return err
	}
	entry := stores.Sgt().History().Record(c.Context, question, text)
	fmt.Println(text)
	zlog.Get().Debugw("recorded", "id", entry.ID)
	return nil
}

func historyList(c *cli.Context) error {
	data := stores.Sgt().History().List(c.Context).Head(c.Int("limit"))
	for _, e := range data {
		fmt.Printf("[%s] %s\nQ: %s\nA: %s\n\n", e.Timestamp, e.ID, e.Question, e.Answer)
	}
	return nil
}

func historyClear(c *cli.Context) error {
	stores.Sgt().History().Clear(c.Context)
	fmt.Println("history cleared")
	return nil
}
