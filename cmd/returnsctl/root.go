package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pallet-returns-dashboard/internal/dashboard"
	"pallet-returns-dashboard/internal/models"
)

const defaultAPI = "http://localhost:8080/api"

type cli struct {
	v   *viper.Viper
	out io.Writer
	api dashboard.API // set by tests; otherwise built from --api
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "returnsctl",
		Short:         "Manage pallet return requests from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.out = cmd.OutOrStdout()
		},
	}
	cmd.PersistentFlags().String("api", defaultAPI, "base URL of the returns API (env RETURNSCTL_API)")
	_ = c.v.BindPFlag("api", cmd.PersistentFlags().Lookup("api"))
	_ = c.v.BindEnv("api", "RETURNSCTL_API")

	cmd.AddCommand(
		c.newListCmd(),
		c.newAddCmd(),
		c.newUpdateCmd(),
		c.newStatusCmd("complete", models.StatusCompleted),
		c.newStatusCmd("reject", models.StatusRejected),
		c.newStatusCmd("reopen", models.StatusPending),
		c.newDeleteCmd(),
	)
	return cmd
}

func (c *cli) dashboard(pageSize int) *dashboard.Dashboard {
	api := c.api
	if api == nil {
		api = dashboard.NewClient(c.v.GetString("api"))
	}
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return dashboard.New(api, pageSize, log)
}

func (c *cli) newListCmd() *cobra.Command {
	var (
		search   string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List return requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := c.dashboard(pageSize)
			if err := d.Refresh(cmd.Context()); err != nil {
				return err
			}
			d.Search(search)
			d.GoToPage(page)
			printView(c.out, d.View())
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "filter by customer name or order id")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", dashboard.DefaultPageSize, "records per page")
	return cmd
}

func (c *cli) newAddCmd() *cobra.Command {
	var f dashboard.Form
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new Pending return request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := c.dashboard(dashboard.DefaultPageSize).Create(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Created %s (%s)\n", created.OrderID, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.CustomerName, "customer", "", "customer name")
	cmd.Flags().StringVar(&f.ReturnDate, "date", "", "return date, YYYY-MM-DD")
	cmd.Flags().IntVar(&f.PalletCount, "pallets", 1, "pallet count")
	cmd.Flags().StringVar(&f.Remarks, "remarks", "", "optional remarks")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func (c *cli) newUpdateCmd() *cobra.Command {
	var f dashboard.EditForm
	cmd := &cobra.Command{
		Use:   "update <id|orderId>",
		Short: "Change fields of a return request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := f.ToPatch()
			if err != nil {
				return err
			}
			// remarks are only sent when the flag was given
			if !cmd.Flags().Changed("remarks") {
				patch.Remarks = nil
			}
			updated, err := c.dashboard(dashboard.DefaultPageSize).Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Updated %s: %s\n", updated.OrderID, updated.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.CustomerName, "customer", "", "customer name")
	cmd.Flags().StringVar(&f.ReturnDate, "date", "", "return date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.PalletCount, "pallets", "", "pallet count")
	cmd.Flags().StringVar(&f.Status, "status", "", "Pending, Completed or Rejected")
	cmd.Flags().StringVar(&f.Remarks, "remarks", "", "remarks, empty to clear")
	return cmd
}

func (c *cli) newStatusCmd(use string, status models.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id|orderId>",
		Short: "Mark a return request as " + status.String(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := c.dashboard(dashboard.DefaultPageSize).SetStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Updated %s: %s\n", updated.OrderID, updated.Status)
			return nil
		},
	}
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|orderId>",
		Short: "Delete a return request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.dashboard(dashboard.DefaultPageSize).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Deleted %s\n", args[0])
			return nil
		},
	}
}

func printView(w io.Writer, v dashboard.View) {
	fmt.Fprintf(w, "Total %d  Pending %d  Completed %d  Rejected %d\n\n",
		v.Stats.Total, v.Stats.Pending, v.Stats.Completed, v.Stats.Rejected)

	if len(v.Page.Items) == 0 {
		fmt.Fprintln(w, "No return requests found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"ORDER ID", "CUSTOMER", "DATE", "PALLETS", "STATUS", "REMARKS"}, "\t"))
	for _, r := range v.Page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.OrderID, r.CustomerName, r.ReturnDate, r.PalletCount, r.Status, r.Remarks)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nPage %d of %d (%d matching)\n", v.Page.Number, max(v.Page.TotalPages, 1), v.Page.Total)
}
