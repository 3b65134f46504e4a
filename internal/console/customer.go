package console

import (
	"context"
	"fmt"

	"github.com/skyroute/skyroute/internal/domain"
)

func (sh *Shell) customerMenu(ctx context.Context) error {
	sh.runMenu(ctx, "CUSTOMER MANAGEMENT", "Back", []command{
		{label: "List customers", run: sh.listCustomers},
		{label: "Add customer", run: sh.addCustomer},
		{label: "Update customer", run: sh.updateCustomer},
		{label: "Deactivate customer", run: sh.deactivateCustomer},
		{label: "Delete customer", run: sh.deleteCustomer},
	})
	return nil
}

func (sh *Shell) listCustomers(ctx context.Context) error {
	listings, err := sh.customers.List(ctx)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		fmt.Fprintln(sh.out, "No customers on record.")
		return nil
	}
	for _, l := range listings {
		fmt.Fprintf(sh.out, "Name: %s, Surname: %s, ID: %s, Email: %s, Address: %s, Phone: %s, Status: %s\n",
			l.Name, l.Surname, l.NationalID, l.Email, l.Address, l.Phone, l.Status)
	}
	return nil
}

func (sh *Shell) addCustomer(ctx context.Context) error {
	name, err := sh.prompt("Name: ")
	if err != nil {
		return err
	}
	surname, err := sh.prompt("Surname: ")
	if err != nil {
		return err
	}
	address, err := sh.prompt("Address: ")
	if err != nil {
		return err
	}
	email, err := sh.promptValidated("Email: ",
		"Invalid email. Expected something like name@example.com.", domain.ValidEmail)
	if err != nil {
		return err
	}
	nationalID, err := sh.promptValidated("National ID (xxx.xxx.xxx): ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	phone, err := sh.promptValidated("Phone (xxx-xxxxxxx): ",
		"Invalid phone. Expected format xxx-xxxxxxx.", domain.ValidPhone)
	if err != nil {
		return err
	}

	c, err := sh.customers.Register(ctx, name, surname, address, email, nationalID, phone)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Customer %s %s registered with ID %s.\n", c.Name, c.Surname, c.NationalID)
	return nil
}

func (sh *Shell) updateCustomer(ctx context.Context) error {
	nationalID, err := sh.promptValidated("National ID of the customer to update: ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	c, err := sh.customers.Get(ctx, nationalID)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Current record — Name: %s, Surname: %s, ID: %s, Email: %s, Address: %s\n",
		c.Name, c.Surname, c.NationalID, c.Email, c.Address)

	field, err := sh.promptValidated("Field to update (name, surname, nationalId, email, address): ",
		"Unknown field. Choose name, surname, nationalId, email or address.",
		func(s string) bool { _, err := domain.ParseCustomerField(s); return err == nil })
	if err != nil {
		return err
	}

	var value string
	switch f, _ := domain.ParseCustomerField(field); f {
	case domain.CustomerFieldNationalID:
		value, err = sh.promptValidated("New national ID (xxx.xxx.xxx): ",
			"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	case domain.CustomerFieldEmail:
		value, err = sh.promptValidated("New email: ",
			"Invalid email. Expected something like name@example.com.", domain.ValidEmail)
	default:
		value, err = sh.prompt("New value: ")
	}
	if err != nil {
		return err
	}

	updated, err := sh.customers.Update(ctx, nationalID, field, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Customer updated — Name: %s, Surname: %s, ID: %s, Email: %s, Address: %s\n",
		updated.Name, updated.Surname, updated.NationalID, updated.Email, updated.Address)
	return nil
}

func (sh *Shell) deactivateCustomer(ctx context.Context) error {
	nationalID, err := sh.promptValidated("National ID of the customer to deactivate: ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	ok, err := sh.confirm(fmt.Sprintf("Deactivate customer %s?", nationalID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(sh.out, "Deactivation cancelled.")
		return nil
	}
	if err := sh.customers.Deactivate(ctx, nationalID); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Customer %s is now Inactive.\n", nationalID)
	return nil
}

func (sh *Shell) deleteCustomer(ctx context.Context) error {
	nationalID, err := sh.promptValidated("National ID of the customer to delete: ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	c, err := sh.customers.Get(ctx, nationalID)
	if err != nil {
		return err
	}
	ok, err := sh.confirm(fmt.Sprintf("Delete customer %s %s (%s)? This cannot be undone.", c.Name, c.Surname, c.NationalID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(sh.out, "Deletion cancelled.")
		return nil
	}
	if err := sh.customers.Delete(ctx, nationalID); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Customer %s deleted.\n", nationalID)
	return nil
}
