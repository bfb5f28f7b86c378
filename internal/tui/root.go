package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brclaisa/panther-backoffice/internal/api"
	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// App holds the dependencies shared by all commands.
type App struct {
	Client *api.Client

	// IsInteractive gates the full-screen UI; one-shot subcommands
	// work on any terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "panther" command. Running it bare
// opens the interactive back office; subcommands print one section to
// stdout and exit.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "panther",
		Short: "Back office for the PantherPDV point of sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("interactive terminal required; use a subcommand for one-shot output")
			}
			return Run(app.Client)
		},
	}

	root.AddCommand(
		newDashboardCmd(app),
		newProductsCmd(app),
		newCustomersCmd(app),
		newSalesCmd(app),
		newInventoryCmd(app),
		newReportsCmd(app),
	)

	return root
}

// Run starts the full-screen interactive UI.
func Run(client *api.Client) error {
	state := &SharedState{API: client}
	program := tea.NewProgram(newAppModel(state), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// ── one-shot section commands ────────────────────────────────────────────────

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print today's and the month's headline numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			summary, err := app.Client.DashboardSummary(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.DashboardStats(summary))

			// Secondary breakdown; tolerated failure, summary already printed.
			if today, err := app.Client.TodaySales(ctx); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), format.PaymentMethodsChart(today))
			}
			return nil
		},
	}
}

func newProductsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Print the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Client.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.ProductsTable(products, -1))
			return nil
		},
	}
}

func newCustomersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "Print the customer list",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := app.Client.ListCustomers(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.CustomersTable(customers, -1))
			return nil
		},
	}
}

func newSalesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Print the sales history",
		RunE: func(cmd *cobra.Command, args []string) error {
			sales, err := app.Client.ListSales(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.SalesTable(sales, -1))
			return nil
		},
	}

	cmd.AddCommand(newReceiptCmd(app))
	return cmd
}

func newReceiptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <sale-id>",
		Short: "Print the receipt of one sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid sale id %q", args[0])
			}
			receipt, err := app.Client.SaleReceipt(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.ReceiptCard(receipt))
			return nil
		},
	}
}

func newInventoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Print current stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Client.ListInventory(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.InventoryTable(items, -1))
			return nil
		},
	}
}

func newReportsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Print the sales, top-selling and low-stock reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report, err := app.Client.SalesReport(ctx)
			if err != nil {
				return err
			}
			top, err := app.Client.TopSelling(ctx)
			if err != nil {
				return err
			}
			low, err := app.Client.LowStock(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, format.ReportSummary(report))
			fmt.Fprintln(out, format.TopProductsList(top))
			fmt.Fprintln(out, format.LowStockList(low))
			return nil
		},
	}
}
