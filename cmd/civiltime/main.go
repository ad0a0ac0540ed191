package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gocivil/civiltime"
	"github.com/gocivil/civiltime/internal/cliconfig"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printErr("%v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func printOK(format string, args ...any)  { fmt.Printf(format, args...) }
func printErr(format string, args ...any) { fmt.Fprintf(os.Stderr, format, args...) }

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "civiltime",
		Short:        "Inspect and manipulate civil (broken-down) time values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("zone", "z", "", "IANA zone (overrides config, \"\" = system zone)")
	cmd.PersistentFlags().StringP("locale", "l", "", "Locale tag for date/time text (overrides config)")

	cmd.AddCommand(
		newNowCmd(),
		newMakeCmd(),
		newAddCmd(),
		newDiffCmd(),
		newIsoWeekCmd(),
		newProjectCmd(),
	)

	return cmd
}

func resolveZoneLocale(cmd *cobra.Command) (zone, locale string) {
	cfg, _ := cliconfig.Load()
	if cfg != nil {
		zone, locale = cfg.Zone, cfg.Locale
	}
	if v, _ := cmd.Flags().GetString("zone"); v != "" {
		zone = v
	}
	if v, _ := cmd.Flags().GetString("locale"); v != "" {
		locale = v
	}
	return zone, locale
}

func newNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current civil time",
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := resolveZoneLocale(cmd)
			now := civiltime.MakeNow()
			if zone != "" {
				proj, perr := civiltime.GetInTimezone(now, zone)
				if perr != nil {
					return perr
				}
				printOK("%04d-%02d-%02d %02d:%02d:%02d (%s)\n",
					proj.Year, proj.Month, proj.Day, proj.Hour, proj.Minute, proj.Second, zone)
				return nil
			}
			printOK("%s\n", now.String())
			return nil
		},
	}
	return cmd
}

func newMakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make <YYYY-MM-DD> <HH:MM:SS>",
		Short: "Build and print a civil time from a date and time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := resolveZoneLocale(cmd)
			year, month, day, err := parseISODate(args[0])
			if err != nil {
				return err
			}
			hour, minute, second, err := parseISOTime(args[1])
			if err != nil {
				return err
			}
			i, err := civiltime.MakeLocal(zone, year, civiltime.Month(month), day, hour, minute, second)
			if err != nil {
				return err
			}
			printOK("%s\n", i.String())
			return nil
		},
	}
	return cmd
}

func newAddCmd() *cobra.Command {
	var seconds, days, months, years int64
	cmd := &cobra.Command{
		Use:   "add <YYYY-MM-DD> <HH:MM:SS>",
		Short: "Add seconds/days/months/years to a civil time and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := resolveZoneLocale(cmd)
			year, month, day, err := parseISODate(args[0])
			if err != nil {
				return err
			}
			hour, minute, second, err := parseISOTime(args[1])
			if err != nil {
				return err
			}
			i, err := civiltime.MakeLocal(zone, year, civiltime.Month(month), day, hour, minute, second)
			if err != nil {
				return err
			}
			if seconds != 0 {
				if err := i.AddSeconds(civiltime.Extent(seconds)); err != nil {
					return err
				}
			}
			if days != 0 {
				if err := i.AddDays(int(days)); err != nil {
					return err
				}
			}
			if months != 0 {
				if err := i.AddMonths(int(months)); err != nil {
					return err
				}
			}
			if years != 0 {
				if err := i.AddYears(int(years)); err != nil {
					return err
				}
			}
			printOK("%s\n", i.String())
			return nil
		},
	}
	cmd.Flags().Int64Var(&seconds, "seconds", 0, "seconds to add")
	cmd.Flags().Int64Var(&days, "days", 0, "days to add")
	cmd.Flags().Int64Var(&months, "months", 0, "months to add")
	cmd.Flags().Int64Var(&years, "years", 0, "years to add")
	return cmd
}

func newDiffCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "diff <a-date> <a-time> <b-date> <b-time>",
		Short: "Report the difference between two civil times",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := resolveZoneLocale(cmd)
			a, err := makeFromArgs(zone, args[0], args[1])
			if err != nil {
				return err
			}
			b, err := makeFromArgs(zone, args[2], args[3])
			if err != nil {
				return err
			}
			return reportDiff(a, b, unit)
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "seconds",
		"seconds|days|months|years|calendar-days|calendar-months|calendar-years|iso-years")
	return cmd
}

func reportDiff(a, b civiltime.Instant, unit string) error {
	switch unit {
	case "seconds":
		v, err := civiltime.DiffSeconds(a, b)
		if err != nil {
			return err
		}
		printOK("%d\n", v)
	case "days":
		d, s, err := civiltime.DiffDays(a, b)
		if err != nil {
			return err
		}
		printOK("%d days, %d seconds\n", d, s)
	case "months":
		mo, d, s, err := civiltime.DiffMonths(a, b)
		if err != nil {
			return err
		}
		printOK("%d months, %d days, %d seconds\n", mo, d, s)
	case "years":
		y, mo, d, s, err := civiltime.DiffYears(a, b)
		if err != nil {
			return err
		}
		printOK("%d years, %d months, %d days, %d seconds\n", y, mo, d, s)
	case "calendar-days":
		v, err := civiltime.DiffCalendarDays(a, b)
		if err != nil {
			return err
		}
		printOK("%d\n", v)
	case "calendar-months":
		v, err := civiltime.DiffCalendarMonths(a, b)
		if err != nil {
			return err
		}
		printOK("%d\n", v)
	case "calendar-years":
		v, err := civiltime.DiffCalendarYears(a, b)
		if err != nil {
			return err
		}
		printOK("%d\n", v)
	case "iso-years":
		v, err := civiltime.DiffISOYears(a, b)
		if err != nil {
			return err
		}
		printOK("%d\n", v)
	default:
		return fmt.Errorf("unknown --unit %q", unit)
	}
	return nil
}

func newIsoWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isoweek <YYYY-MM-DD>",
		Short: "Print the ISO 8601 week-year and week number of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, day, err := parseISODate(args[0])
			if err != nil {
				return err
			}
			isoYear, week := civiltime.ISOWeek(year, civiltime.Month(month), day)
			printOK("%04d-W%02d\n", isoYear, week)
			return nil
		},
	}
	return cmd
}

func newProjectCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "project <YYYY-MM-DD> <HH:MM:SS>",
		Short: "Reinterpret a civil time in a different zone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := resolveZoneLocale(cmd)
			i, err := makeFromArgs(zone, args[0], args[1])
			if err != nil {
				return err
			}
			if to == "" {
				return fmt.Errorf("--to is required")
			}
			proj, err := civiltime.GetInTimezone(i, to)
			if err != nil {
				return err
			}
			printOK("%04d-%02d-%02d %02d:%02d:%02d (%s, dst=%v)\n",
				proj.Year, proj.Month, proj.Day, proj.Hour, proj.Minute, proj.Second, to, proj.IsDST)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target IANA zone")
	return cmd
}

func makeFromArgs(zone, dateArg, timeArg string) (civiltime.Instant, error) {
	year, month, day, err := parseISODate(dateArg)
	if err != nil {
		return civiltime.Instant{}, err
	}
	hour, minute, second, err := parseISOTime(timeArg)
	if err != nil {
		return civiltime.Instant{}, err
	}
	return civiltime.MakeLocal(zone, year, civiltime.Month(month), day, hour, minute, second)
}

func parseISODate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return atoi(parts[0]), atoi(parts[1]), atoi(parts[2]), nil
}

func parseISOTime(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("invalid time %q, expected HH:MM or HH:MM:SS", s)
	}
	hour, minute = atoi(parts[0]), atoi(parts[1])
	if len(parts) == 3 {
		second = atoi(parts[2])
	}
	return hour, minute, second, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
