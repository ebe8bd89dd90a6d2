// Command healthctl queries a running health service. It is small enough to
// serve as a container HEALTHCHECK: the exit status is 0 when the report is
// UP, 1 when it is DOWN or cannot be fetched.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// errDown is returned by the check command when the report is DOWN.
var errDown = errors.New("health report is DOWN")

const defaultBaseURL = "http://localhost:8080"

// options holds the persistent flags shared by every command.
type options struct {
	baseURL string
	timeout time.Duration
}

func main() {
	root := newRootCmd(http.DefaultClient)
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errDown) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// newRootCmd wires the cobra command tree. client performs every request.
func newRootCmd(client *http.Client) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "Query a health service",
		Long:          "healthctl fetches health reports and manages the reporter policy of a running health service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "url", defaultBaseURL, "base URL of the health service")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(newCheckCommand(client, opts))
	root.AddCommand(newConfigCommand(client, opts))
	return root
}

// do sends req with the command timeout applied and returns the response
// body together with the status code.
func (o *options) do(ctx context.Context, client *http.Client, req *http.Request) (int, []byte, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return 0, nil, fmt.Errorf("requesting %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response from %s: %w", req.URL, err)
	}
	return resp.StatusCode, body, nil
}
