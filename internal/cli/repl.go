package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/plantparent/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// printFn writes the prompt without a trailing newline.
var printFn = fmt.Print

// execIface is the command surface the REPL drives. App satisfies it;
// tests provide a recording stub.
type execIface interface {
	Reload(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Show(ctx context.Context, ref string) error
	Edit(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
	LogCare(ctx context.Context, ref string, c models.CareType) error
	AddPhoto(ctx context.Context, ref, uri string) error
	Timeline(ctx context.Context, ref string) error
	Reminders(ctx context.Context) error
	Notify(ctx context.Context) error
	Premium(ctx context.Context) error
	Purchase(ctx context.Context) error
	Settings(ctx context.Context) error
	SetLanguage(ctx context.Context, code string) error
	SetDateFormat(ctx context.Context, format string) error
	Export(ctx context.Context) error
	handleError(ctx context.Context, cmd string, err error)
}

const helpText = `Available commands:
  list                     list plants
  add                      add a plant
  show <plant>             plant details
  edit <plant>             edit a plant
  delete <plant>           delete a plant
  water <plant>            log a watering
  fertilize <plant>        log a fertilizing
  photo <plant> [uri]      add a photo
  timeline <plant>         photo timeline
  reminders                care that is due
  notify                   send reminders to configured services
  premium                  show plan
  purchase                 unlock premium
  settings                 show settings
  lang [code]              change language
  datefmt [format]         change date format
  export                   export data
  exit | quit              leave`

// runREPL reads one command per line from r and dispatches it to a.
// State is reloaded before every command. Errors returned by handlers go
// to a.handleError so the loop keeps running. The loop ends on EOF, on
// "exit"/"quit" or when ctx is canceled.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, r *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("plantparent (%s) > ", statusFn(ctx)))

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]
		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help", "?":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if err := a.Reload(ctx); err != nil {
			a.handleError(ctx, cmd, err)
			continue
		}

		var cmdErr error
		switch cmd {
		case "l", "list":
			cmdErr = a.List(ctx)
		case "add":
			cmdErr = a.Add(ctx)
		case "show":
			cmdErr = a.Show(ctx, arg(0))
		case "edit":
			cmdErr = a.Edit(ctx, arg(0))
		case "delete", "rm":
			cmdErr = a.Delete(ctx, arg(0))
		case "water":
			cmdErr = a.LogCare(ctx, arg(0), models.CareWater)
		case "fertilize":
			cmdErr = a.LogCare(ctx, arg(0), models.CareFertilize)
		case "photo":
			cmdErr = a.AddPhoto(ctx, arg(0), strings.Join(args[min(1, len(args)):], " "))
		case "timeline":
			cmdErr = a.Timeline(ctx, arg(0))
		case "reminders":
			cmdErr = a.Reminders(ctx)
		case "notify":
			cmdErr = a.Notify(ctx)
		case "premium":
			cmdErr = a.Premium(ctx)
		case "purchase":
			cmdErr = a.Purchase(ctx)
		case "settings":
			cmdErr = a.Settings(ctx)
		case "lang":
			cmdErr = a.SetLanguage(ctx, arg(0))
		case "datefmt":
			cmdErr = a.SetDateFormat(ctx, strings.Join(args, " "))
		case "export":
			cmdErr = a.Export(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.handleError(ctx, cmd, cmdErr)
		}

		if err != nil {
			return
		}
	}
}
