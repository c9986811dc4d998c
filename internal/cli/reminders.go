package cli

import (
	"context"

	"github.com/dmitrijs2005/plantparent/internal/care"
	"github.com/dmitrijs2005/plantparent/internal/notify"
)

func (a *App) reminders(ctx context.Context) ([]care.Reminder, error) {
	list, err := a.plants.List(ctx)
	if err != nil {
		return nil, err
	}
	return care.Reminders(list, a.now()), nil
}

func (a *App) Reminders(ctx context.Context) error {
	rs, err := a.reminders(ctx)
	if err != nil {
		return err
	}

	tr := a.translator()
	a.println(tr.ReminderCount(len(rs)))
	for i, r := range rs {
		a.printf("%2d. [%s] %s - %s\n", i+1, tr.Urgency(r.Urgency), tr.ReminderTitle(r), tr.ReminderDescription(r))
	}
	return nil
}

func (a *App) Notify(ctx context.Context) error {
	if a.notifier == nil || !a.notifier.Enabled() {
		return notify.ErrNotConfigured
	}

	rs, err := a.reminders(ctx)
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		a.println("Nothing is due, no notification sent.")
		return nil
	}

	if err := a.notifier.SendReminders(ctx, a.translator(), rs); err != nil {
		return err
	}
	a.printf("Sent %d reminders.\n", len(rs))
	return nil
}
