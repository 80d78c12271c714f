package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/query"
	"github.com/mmynk/housesplit/internal/storage"
)

func (a *app) roommateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roommate",
		Short: "Manage roommates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a roommate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				r := &models.Roommate{Name: args[0]}
				if err := store.CreateRoommate(ctx, r); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added roommate %s (%s)\n", r.Name, r.ID)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active roommates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				roommates, err := store.ListActiveRoommates(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME")
				for _, r := range roommates {
					fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Name)
				}
				return w.Flush()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ROOMMATE_ID",
		Short: "Deactivate a roommate and drop them from every bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				if err := store.DeactivateRoommate(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed roommate %s\n", args[0])
				return nil
			})
		},
	})

	return cmd
}

func (a *app) billCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage bills",
	}

	var addDue string
	add := &cobra.Command{
		Use:   "add NAME AMOUNT",
		Short: "Add a bill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := parseBill("", args[0], args[1], addDue)
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				if err := store.CreateBill(ctx, bill); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added bill %s %.2f (%s)\n", bill.Name, bill.Amount, bill.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	cmd.AddCommand(add)

	var updateDue string
	update := &cobra.Command{
		Use:   "update BILL_ID NAME AMOUNT",
		Short: "Replace a bill's name, amount and due date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := parseBill(args[0], args[1], args[2], updateDue)
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				if err := store.UpdateBill(ctx, bill); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated bill %s %.2f (%s)\n", bill.Name, bill.Amount, bill.ID)
				return nil
			})
		},
	}
	update.Flags().StringVar(&updateDue, "due", "", "Due date (YYYY-MM-DD)")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				bills, err := store.ListActiveBills(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tDUE")
				for _, b := range bills {
					due := b.DueDateString()
					if due == "" {
						due = "-"
					}
					fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", b.ID, b.Name, b.Amount, due)
				}
				return w.Flush()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove BILL_ID",
		Short: "Deactivate a bill and clear its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				if err := store.DeactivateBill(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed bill %s\n", args[0])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "breakdown BILL_ID",
		Short: "Show how a bill divides among its assignees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				b, err := query.New(store).GetBillBreakdown(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %.2f\n", b.Bill.Name, b.Bill.Amount)
				if len(b.Shares) == 0 {
					fmt.Fprintln(out, "No roommates assigned")
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ROOMMATE\tSHARE")
				for _, s := range b.Shares {
					fmt.Fprintf(w, "%s\t%s\n", s.RoommateName, s.Cents.StringFixed(2))
				}
				return w.Flush()
			})
		},
	})

	return cmd
}

func (a *app) assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign BILL_ID ROOMMATE_ID",
		Short: "Add a roommate to a bill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				if err := store.Assign(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Bill assigned")
				return nil
			})
		},
	}
}

func (a *app) unassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign BILL_ID ROOMMATE_ID",
		Short: "Remove a roommate from a bill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				if err := store.Unassign(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Bill assignment removed")
				return nil
			})
		},
	}
}

func (a *app) totalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show what each roommate owes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store storage.Store) error {
				totals, err := query.New(store).GetAllRoommateTotals(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tTOTAL")
				for _, t := range totals {
					fmt.Fprintf(w, "%s\t%.2f\n", t.Name, t.Total)
				}
				return w.Flush()
			})
		},
	}
}

func parseBill(id, name, amount, due string) (*models.Bill, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, &storage.ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", amount)}
	}
	dueDate, err := storage.ParseDueDate(due)
	if err != nil {
		return nil, err
	}
	return &models.Bill{
		ID:      id,
		Name:    name,
		Amount:  d.InexactFloat64(),
		DueDate: dueDate,
	}, nil
}
