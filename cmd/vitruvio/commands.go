package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vitruvio-dev/vitruvio/pkg/blueprint"
	"github.com/vitruvio-dev/vitruvio/pkg/config"
	"github.com/vitruvio-dev/vitruvio/pkg/tools"
	"github.com/vitruvio-dev/vitruvio/pkg/tools/registry"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "vitruvio",
		Short:         "Validate agent blueprints and exercise their MCP tool arms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	root.AddCommand(
		newValidateCmd(&configPath),
		newToolsCmd(&configPath),
		newCallCmd(&configPath),
	)
	return root
}

func newValidateCmd(configPath *string) *cobra.Command {
	var assignID bool

	cmd := &cobra.Command{
		Use:   "validate <blueprint>",
		Short: "Validate a blueprint document, reporting every violation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			b, err := loadBlueprint(cfg, args[0])
			if err != nil {
				var verr *blueprint.ValidationError
				if errors.As(err, &verr) {
					fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %d violation(s)\n", len(verr.Violations))
					for _, v := range verr.Violations {
						fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", v.Error())
					}
				}
				return err
			}

			if assignID && b.ID == "" {
				b = b.WithID(uuid.NewString())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "blueprint %q is valid (%d arm(s), mode %s)\n",
				b.Name, len(b.Arms), b.Legs.Mode)
			if b.ID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "id: %s\n", b.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&assignID, "assign-id", false, "assign a fresh identifier to the validated blueprint")
	return cmd
}

func newToolsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tools <blueprint>",
		Short: "Discover tools over every mcp_tool arm of a blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			handles, err := buildHandles(cfg, args[0])
			if err != nil {
				return err
			}

			for _, h := range handles {
				if h.MCP == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: executed by collaborator, not discoverable\n", h.Name)
					continue
				}
				descs, err := h.MCP.DiscoverTools(cmd.Context())
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", h.Name, err)
					continue
				}
				for _, d := range descs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s/%s: %s\n", h.Name, d.Name, d.Description)
				}
			}
			return nil
		},
	}
}

func newCallCmd(configPath *string) *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "call <blueprint> <tool>",
		Short: "Invoke a tool on the first mcp_tool arm providing it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			handles, err := buildHandles(cfg, args[0])
			if err != nil {
				return err
			}

			toolName := args[1]
			for _, h := range handles {
				if h.MCP == nil {
					continue
				}
				descs, err := h.MCP.DiscoverTools(cmd.Context())
				if err != nil {
					return err
				}
				for _, d := range descs {
					if d.Name != toolName {
						continue
					}
					result := h.Invoke(cmd.Context(), tools.ToolCall{
						ID:        uuid.NewString(),
						Name:      toolName,
						Arguments: argsJSON,
					})
					fmt.Fprintln(cmd.OutOrStdout(), result.Output)
					if result.IsError {
						return fmt.Errorf("tool call failed")
					}
					return nil
				}
			}
			return fmt.Errorf("no mcp_tool arm provides tool %q", toolName)
		},
	}
	cmd.Flags().StringVarP(&argsJSON, "args", "a", "", "JSON arguments payload")
	return cmd
}

// loadBlueprint resolves a path or a bare name under blueprints.dir.
func loadBlueprint(cfg *config.Config, ref string) (blueprint.AgentBlueprint, error) {
	path := ref
	if _, err := os.Stat(path); err != nil && !filepath.IsAbs(ref) {
		candidate := filepath.Join(cfg.Blueprints.Dir, ref)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	return blueprint.Load(path)
}

func buildHandles(cfg *config.Config, ref string) ([]*registry.Handle, error) {
	b, err := loadBlueprint(cfg, ref)
	if err != nil {
		return nil, err
	}

	reg := registry.New(
		registry.WithCredential(cfg.MCP.Credential),
		registry.WithCredentialEnvVar(cfg.MCP.CredentialEnvVar),
		registry.WithAuthHeader(cfg.MCP.AuthHeader),
		registry.WithTimeout(cfg.MCP.Timeout()),
	)
	return reg.BuildAll(b)
}
