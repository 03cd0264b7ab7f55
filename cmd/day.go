package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/app"
	"github.com/andre0707/pfterm/internal/timefmt"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Print the attendance window and booked times for one day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if dayDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dayDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q, want yyyy-mm-dd", dayDate)
			}
			date = parsed
		}

		a, err := app.New(credsPath)
		if err != nil {
			return err
		}

		snap := a.ReadDay(cmd.Context(), date)
		out := cmd.OutOrStdout()
		totals := snap.Totals

		unbooked := "-"
		if totals.HasUnbooked {
			unbooked = timefmt.Duration(totals.Unbooked)
		}

		fmt.Fprintf(out, "Date:      %s\n", timefmt.Day(date))
		fmt.Fprintf(out, "Login:     %s\n", timefmt.Clock(totals.Login))
		fmt.Fprintf(out, "Logout:    %s\n", timefmt.Clock(totals.Logout))
		fmt.Fprintf(out, "Break:     %s\n", timefmt.Minutes(totals.Break))
		fmt.Fprintf(out, "Unbooked:  %s\n", unbooked)
		fmt.Fprintf(out, "Booked:    %s (billable %s)\n", timefmt.HHMM(totals.Total), timefmt.HHMM(totals.Billable))

		if len(snap.Entries) > 0 {
			fmt.Fprintf(out, "\n%-8s %-9s %-9s %-8s %s\n", "ID", "Duration", "Billable", "Ticket", "Description")
			for _, e := range snap.Entries {
				ticket := "-"
				if e.TicketID != 0 {
					ticket = strconv.Itoa(e.TicketID)
				}
				fmt.Fprintf(out, "%-8d %-9s %-9s %-8s %s\n",
					e.ID, timefmt.HHMM(e.Duration), timefmt.HHMM(e.Billable), ticket, e.Description)
			}
		}

		if snap.LastError != nil {
			return snap.LastError
		}
		return nil
	},
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "day to read, yyyy-mm-dd (default today)")
	rootCmd.AddCommand(dayCmd)
}
