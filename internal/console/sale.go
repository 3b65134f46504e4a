package console

import (
	"context"
	"fmt"

	"github.com/skyroute/skyroute/internal/domain"
)

func (sh *Shell) salesMenu(ctx context.Context) error {
	sh.runMenu(ctx, "TICKET PURCHASE AND CANCELLATION", "Back", []command{
		{label: "Purchase tickets", run: sh.purchaseTickets},
		{label: "Cancel a sale", run: sh.cancelSale},
		{label: "List sales by customer", run: sh.listSales},
	})
	return nil
}

func (sh *Shell) printSales(sales []domain.Sale) {
	for _, s := range sales {
		fmt.Fprintf(sh.out, "ID: %s | Purchased: %s | Destination: %s | Tickets: %d | Status: %s\n",
			s.ID, s.PurchasedAt.Format("2006-01-02 15:04:05"), s.DestinationID, s.TicketCount, s.Status)
	}
}

func (sh *Shell) purchaseTickets(ctx context.Context) error {
	views, err := sh.sales.ListDestinations(ctx)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Fprintln(sh.out, "No destinations available for sale.")
		return nil
	}
	sh.printDestinations(views)

	nationalID, err := sh.promptValidated("Customer national ID (xxx.xxx.xxx): ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	destinationID, err := sh.promptUUID("Destination ID: ")
	if err != nil {
		return err
	}
	ticketCount, err := sh.promptInt("Number of tickets: ", 1)
	if err != nil {
		return err
	}

	sale, err := sh.sales.Purchase(ctx, nationalID, destinationID, ticketCount)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Purchase recorded — ID: %s | Tickets: %d | Purchased: %s\n",
		sale.ID, sale.TicketCount, sale.PurchasedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func (sh *Shell) cancelSale(ctx context.Context) error {
	nationalID, err := sh.promptValidated("Customer national ID (xxx.xxx.xxx): ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	sales, err := sh.sales.ListActive(ctx, nationalID)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		fmt.Fprintln(sh.out, "This customer has no active sales.")
		return nil
	}
	sh.printSales(sales)

	saleID, err := sh.promptUUID("ID of the sale to cancel: ")
	if err != nil {
		return err
	}
	reason, err := sh.promptValidated("Reason for cancellation: ",
		"A reason is required.", func(s string) bool { return s != "" })
	if err != nil {
		return err
	}

	if err := sh.sales.Cancel(ctx, nationalID, saleID, reason); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Sale cancelled and reason recorded.")
	return nil
}

func (sh *Shell) listSales(ctx context.Context) error {
	nationalID, err := sh.promptValidated("Customer national ID (xxx.xxx.xxx): ",
		"Invalid national ID. Expected format xxx.xxx.xxx.", domain.ValidNationalID)
	if err != nil {
		return err
	}
	statusFilter, err := sh.promptValidated("Status filter (Active or Cancelled): ",
		"Choose Active or Cancelled.",
		func(s string) bool { _, err := domain.ParseSaleStatus(s); return err == nil })
	if err != nil {
		return err
	}

	sales, err := sh.sales.List(ctx, nationalID, statusFilter)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		fmt.Fprintln(sh.out, "No sales match the filter.")
		return nil
	}
	sh.printSales(sales)
	return nil
}
