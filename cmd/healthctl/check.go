package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
)

// endpoints maps the --endpoint flag to a service path.
var endpoints = map[string]string{
	"all":   "/health",
	"live":  "/health/live",
	"ready": "/health/ready",
}

func newCheckCommand(client *http.Client, opts *options) *cobra.Command {
	var (
		endpoint string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fetch a health report and exit non-zero when it is DOWN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, ok := endpoints[endpoint]
			if !ok {
				return fmt.Errorf("unknown endpoint %q (want all, live, or ready)", endpoint)
			}

			report, raw, err := fetchReport(cmd.Context(), client, opts, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				_, err = fmt.Fprintln(out, string(raw))
			} else {
				err = printReport(out, report)
			}
			if err != nil {
				return err
			}

			if report.IsDown() {
				return errDown
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "all", "report to fetch: all, live, or ready")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw report")
	return cmd
}

// fetchReport requests path and decodes the report. 200 and 503 both carry
// a report; any other status is an error.
func fetchReport(ctx context.Context, client *http.Client, opts *options, path string) (*health.Health, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(opts.baseURL, "/")+path, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	code, body, err := opts.do(ctx, client, req)
	if err != nil {
		return nil, nil, err
	}
	if code != http.StatusOK && code != http.StatusServiceUnavailable {
		return nil, nil, fmt.Errorf("unexpected status %d from %s", code, req.URL)
	}

	var report health.Health
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, nil, fmt.Errorf("decoding health report: %w", err)
	}
	if !report.Status().IsValid() {
		return nil, nil, fmt.Errorf("decoding health report: invalid status %q", report.Status())
	}
	return &report, body, nil
}

// printReport writes one line per check, followed by its data in order.
func printReport(w io.Writer, report *health.Health) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "status:\t%s\n", report.Status())
	for _, c := range report.Checks() {
		fmt.Fprintf(tw, "  %s\t%s\t", c.Status, c.Name)

		pairs := make([]string, 0, c.Data.Len())
		for _, k := range c.Data.Keys() {
			v, _ := c.Data.Get(k)
			pairs = append(pairs, k+"="+firstLine(v))
		}
		fmt.Fprintln(tw, strings.Join(pairs, " "))
	}
	return tw.Flush()
}

// firstLine trims multi-line values such as stack traces.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
