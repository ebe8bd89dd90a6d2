package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
)

const configPath = "/health/config"

func newConfigCommand(client *http.Client, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the reporter policy",
	}
	cmd.AddCommand(newConfigGetCommand(client, opts))
	cmd.AddCommand(newConfigSetCommand(client, opts))
	return cmd
}

func newConfigGetCommand(client *http.Client, opts *options) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the reporter policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := sendConfig(cmd, client, opts, http.MethodGet, nil)
			if err != nil {
				return err
			}
			if asYAML {
				return printConfigYAML(cmd, resp)
			}
			printConfig(cmd, resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the policy as a health block for the service config files")
	return cmd
}

func newConfigSetCommand(client *http.Client, opts *options) *cobra.Command {
	var (
		emptyOutcome string
		dataStyle    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the reporter policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req dto.HealthConfigRequest
			if cmd.Flags().Changed("empty-checks-outcome") {
				req.EmptyChecksOutcome = &emptyOutcome
			}
			if cmd.Flags().Changed("data-style") {
				req.UncheckedExceptionDataStyle = &dataStyle
			}
			if err := req.Validate(); err != nil {
				return err
			}
			resp, err := sendConfig(cmd, client, opts, http.MethodPut, &req)
			if err != nil {
				return err
			}
			printConfig(cmd, resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&emptyOutcome, "empty-checks-outcome", "", "status reported when no probes are registered: UP or DOWN")
	cmd.Flags().StringVar(&dataStyle, "data-style", "", "failure diagnostics: NONE, ROOT_CAUSE, or STACK_TRACE")
	return cmd
}

// sendConfig performs a config request and returns the resulting policy.
func sendConfig(cmd *cobra.Command, client *http.Client, opts *options, method string, body *dto.HealthConfigRequest) (dto.HealthConfigResponse, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return dto.HealthConfigResponse{}, fmt.Errorf("encoding request: %w", err)
		}
	}

	ctx := cmd.Context()
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(opts.baseURL, "/")+configPath, &payload)
	if err != nil {
		return dto.HealthConfigResponse{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	code, respBody, err := opts.do(ctx, client, req)
	if err != nil {
		return dto.HealthConfigResponse{}, err
	}
	if code != http.StatusOK {
		return dto.HealthConfigResponse{}, problemError(code, respBody)
	}

	var resp dto.HealthConfigResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return dto.HealthConfigResponse{}, fmt.Errorf("decoding response: %w", err)
	}
	return resp, nil
}

func printConfig(cmd *cobra.Command, resp dto.HealthConfigResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "empty checks outcome:           %s\n", resp.EmptyChecksOutcome)
	fmt.Fprintf(out, "unchecked exception data style: %s\n", resp.UncheckedExceptionDataStyle)
}

// healthBlock mirrors the health section of configs/*.yaml.
type healthBlock struct {
	Health struct {
		EmptyChecksOutcome          string `yaml:"empty_checks_outcome"`
		UncheckedExceptionDataStyle string `yaml:"unchecked_exception_data_style"`
	} `yaml:"health"`
}

// printConfigYAML prints the policy in the layout of configs/*.yaml.
func printConfigYAML(cmd *cobra.Command, resp dto.HealthConfigResponse) error {
	var block healthBlock
	block.Health.EmptyChecksOutcome = resp.EmptyChecksOutcome
	block.Health.UncheckedExceptionDataStyle = resp.UncheckedExceptionDataStyle

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(block); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// problemError turns an RFC 9457 error body into an error, falling back to
// the status code when the body is not a problem document.
func problemError(code int, body []byte) error {
	var problem dto.ErrorResponse
	if err := json.Unmarshal(body, &problem); err != nil || problem.Detail == "" {
		return fmt.Errorf("unexpected status %d", code)
	}
	return errors.New(problem.Detail)
}
