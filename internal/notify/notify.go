// Package notify pushes the reminder digest to the services configured as
// shoutrrr URLs (ntfy, Telegram, Discord, SMTP and the rest). Sending is
// on demand only.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"time"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/dmitrijs2005/plantparent/internal/care"
	"github.com/dmitrijs2005/plantparent/internal/i18n"
	"github.com/dmitrijs2005/plantparent/internal/logging"
)

var ErrNotConfigured = errors.New("no notification urls configured")

// Sender delivers one message to every configured service. The shoutrrr
// router satisfies it.
type Sender interface {
	Send(message string, params *stypes.Params) []error
}

type Notifier struct {
	sender Sender
	log    logging.Logger
}

// New builds a notifier for urls. With no urls the notifier is disabled
// and Send reports ErrNotConfigured.
func New(urls []string, timeout time.Duration, log logging.Logger) (*Notifier, error) {
	urls = slices.DeleteFunc(slices.Clone(urls), func(u string) bool { return strings.TrimSpace(u) == "" })
	if len(urls) == 0 {
		return NewWithSender(nil, log), nil
	}

	router, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, fmt.Errorf("invalid notification url: %w", err)
	}
	if timeout > 0 {
		router.Timeout = timeout
	}
	router.SetLogger(quietLogger())

	return NewWithSender(router, log), nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func NewWithSender(s Sender, log logging.Logger) *Notifier {
	return &Notifier{sender: s, log: log.With("component", "notify")}
}

func (n *Notifier) Enabled() bool {
	return n.sender != nil
}

// Send delivers title and body to every service. Failures of individual
// services are joined into one error.
func (n *Notifier) Send(ctx context.Context, title, body string) error {
	if n.sender == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := stypes.Params{}
	if title != "" {
		params.SetTitle(title)
	}

	if err := errors.Join(n.sender.Send(body, &params)...); err != nil {
		n.log.Warn(ctx, "notification delivery failed", "error", err)
		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.log.Info(ctx, "notification sent", "title", title)
	return nil
}

// Digest renders reminders as a notification title and one line per
// reminder.
func Digest(tr *i18n.Translator, reminders []care.Reminder) (title, body string) {
	title = "PlantParent: " + tr.ReminderCount(len(reminders))

	var b strings.Builder
	for _, r := range reminders {
		fmt.Fprintf(&b, "[%s] %s: %s\n", tr.Urgency(r.Urgency), tr.ReminderTitle(r), tr.ReminderDescription(r))
	}
	return title, strings.TrimRight(b.String(), "\n")
}

// SendReminders pushes the digest. An empty reminder list sends nothing.
func (n *Notifier) SendReminders(ctx context.Context, tr *i18n.Translator, reminders []care.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}
	title, body := Digest(tr, reminders)
	return n.Send(ctx, title, body)
}
