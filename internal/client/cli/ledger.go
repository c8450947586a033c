package cli

import (
	"context"
	"fmt"
	"strings"
)

// AddValue records raw, prompting for it when it is blank.
func (a *App) AddValue(ctx context.Context, raw string) error {
	if strings.TrimSpace(raw) == "" {
		var err error
		raw, err = getSimpleText(a.reader, "Enter a numeric value", a.out)
		if err != nil {
			return err
		}
	}

	v, err := a.ledgerService.AddValue(ctx, a.session, raw)
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf("Value %s added successfully!", formatValue(v)))
	return nil
}

// List prints the stored values in the order they were added.
func (a *App) List(ctx context.Context) error {
	values := a.ledgerService.ListValues(a.session)
	if len(values) == 0 {
		a.println("No values stored yet.")
		return nil
	}

	a.println("Stored values:")
	for _, v := range values {
		a.println("- " + formatValue(v))
	}
	return nil
}

// Sum prints the total of all stored values.
func (a *App) Sum(ctx context.Context) error {
	a.println("Total: " + formatValue(a.ledgerService.TotalSum(a.session)))
	return nil
}

// Clear asks for confirmation, then removes every stored value.
func (a *App) Clear(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Are you sure you want to clear all data?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}
	return a.clearAll(ctx)
}

func (a *App) clearAll(ctx context.Context) error {
	if err := a.ledgerService.ClearAll(ctx, a.session); err != nil {
		return err
	}
	a.println("All data has been removed.")
	return nil
}
