package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/plantparent/internal/premium"
)

func (a *App) Premium(ctx context.Context) error {
	if a.premium.IsPremium() {
		a.println("PlantParent Premium is active: unlimited plants.")
		return nil
	}

	list, err := a.plants.List(ctx)
	if err != nil {
		return err
	}
	a.printf("Free plan: %d of %d plants used.\n", len(list), premium.FreePlantLimit)
	a.println("Type 'purchase' to unlock unlimited plants.")
	return nil
}

func (a *App) Purchase(ctx context.Context) error {
	if a.premium.IsPremium() {
		a.println("You already have PlantParent Premium.")
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Unlock PlantParent Premium (%s)?", premium.ProductID), a.out)
	if err != nil || !ok {
		return err
	}

	if ok, err = a.premium.Purchase(ctx); err != nil {
		return err
	}
	if ok {
		a.println("Premium unlocked! You can now add unlimited plants.")
	}
	return nil
}
