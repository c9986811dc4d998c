package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantparent/internal/common"
	"github.com/dmitrijs2005/plantparent/internal/notify"
	"github.com/dmitrijs2005/plantparent/internal/plants"
	"github.com/dmitrijs2005/plantparent/internal/premium"
	"github.com/dmitrijs2005/plantparent/internal/settings"
)

// handleError tells the user what went wrong. Expected outcomes such as
// validation failures are only printed; anything else is logged and
// reported to telemetry.
func (a *App) handleError(ctx context.Context, cmd string, err error) {
	switch {
	case errors.Is(err, plants.ErrPlantLimitReached):
		a.printf("Upgrade to Premium: the free plan is limited to %d plants. Type 'purchase' to unlock unlimited plants.\n", premium.FreePlantLimit)

	case errors.Is(err, settings.ErrNotAvailable):
		a.println("Coming soon!")

	case errors.Is(err, notify.ErrNotConfigured):
		a.println("No notification services configured. Add notify_urls to the config file.")

	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrNotFound):
		a.println("Error:", err)

	case errors.Is(err, context.Canceled):

	default:
		a.println("Error:", err)
		a.log.Error(ctx, fmt.Sprintf("%s failed", cmd), "error", err)
		if a.reporter != nil {
			a.reporter.CaptureError(ctx, err, cmd)
		}
	}
}
