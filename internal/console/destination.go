package console

import (
	"context"
	"fmt"

	"github.com/skyroute/skyroute/internal/domain"
)

func (sh *Shell) destinationMenu(ctx context.Context) error {
	sh.runMenu(ctx, "DESTINATION MANAGEMENT", "Back", []command{
		{label: "Register destination", run: sh.addDestination},
		{label: "List destinations", run: sh.listDestinations},
		{label: "Update destination", run: sh.updateDestination},
		{label: "Delete destination", run: sh.deleteDestination},
	})
	return nil
}

func (sh *Shell) printDestinations(views []domain.DestinationView) {
	for _, v := range views {
		fmt.Fprintf(sh.out, "ID: %s | City: %s, %s, %s | Base cost: %.2f\n",
			v.ID, v.City, v.Province, v.Country, v.BaseCost)
	}
}

func (sh *Shell) addDestination(ctx context.Context) error {
	city, err := sh.prompt("City: ")
	if err != nil {
		return err
	}
	province, err := sh.prompt("Province: ")
	if err != nil {
		return err
	}
	country, err := sh.prompt("Country: ")
	if err != nil {
		return err
	}
	baseCost, err := sh.promptFloat("Base cost: ")
	if err != nil {
		return err
	}

	v, err := sh.destinations.Register(ctx, city, province, country, baseCost)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Destination registered — ID: %s | City: %s, %s, %s | Base cost: %.2f\n",
		v.ID, v.City, v.Province, v.Country, v.BaseCost)
	return nil
}

func (sh *Shell) listDestinations(ctx context.Context) error {
	views, err := sh.destinations.List(ctx)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Fprintln(sh.out, "No destinations on record.")
		return nil
	}
	sh.printDestinations(views)
	return nil
}

func (sh *Shell) updateDestination(ctx context.Context) error {
	views, err := sh.destinations.List(ctx)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Fprintln(sh.out, "No destinations on record.")
		return nil
	}
	sh.printDestinations(views)

	id, err := sh.promptUUID("ID of the destination to update: ")
	if err != nil {
		return err
	}
	field, err := sh.promptValidated("Field to update (city, province, country, baseCost): ",
		"Unknown field. Choose city, province, country or baseCost.",
		func(s string) bool { _, err := domain.ParseDestinationField(s); return err == nil })
	if err != nil {
		return err
	}

	var value string
	if f, _ := domain.ParseDestinationField(field); f == domain.DestinationFieldBaseCost {
		cost, err := sh.promptFloat("New base cost: ")
		if err != nil {
			return err
		}
		value = fmt.Sprintf("%g", cost)
	} else {
		value, err = sh.prompt("New value: ")
		if err != nil {
			return err
		}
	}

	v, err := sh.destinations.Update(ctx, id, field, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Destination updated — ID: %s | City: %s, %s, %s | Base cost: %.2f\n",
		v.ID, v.City, v.Province, v.Country, v.BaseCost)
	return nil
}

func (sh *Shell) deleteDestination(ctx context.Context) error {
	views, err := sh.destinations.List(ctx)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Fprintln(sh.out, "No destinations on record.")
		return nil
	}
	sh.printDestinations(views)

	id, err := sh.promptUUID("ID of the destination to delete: ")
	if err != nil {
		return err
	}
	ok, err := sh.confirm(fmt.Sprintf("Delete destination %s?", id))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(sh.out, "Deletion cancelled.")
		return nil
	}
	if err := sh.destinations.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Destination %s deleted.\n", id)
	return nil
}
