package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/mvidal/launchbox/internal/config"
	"github.com/mvidal/launchbox/internal/desktop"
	"github.com/mvidal/launchbox/internal/launcher"
	"github.com/mvidal/launchbox/internal/reconcile"
	"github.com/mvidal/launchbox/internal/version"
)

// mcpServer wraps the MCP server with the launcher core.
type mcpServer struct {
	store   *config.Store
	scanner *desktop.Scanner
	rec     *reconcile.Reconciler
	mcp     *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all launchbox tools.
func newMCPServer(store *config.Store) (*mcpServer, error) {
	scanner := desktop.NewScanner()
	s := &mcpServer{
		store:   store,
		scanner: scanner,
		rec:     reconcile.New(scanner, store),
	}

	s.mcp = mcpserver.NewMCPServer(
		"launchbox",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list_applications
	s.mcp.AddTool(
		mcp.NewTool("list_applications",
			mcp.WithDescription("List the configured categories and their applications"),
			mcp.WithString("category", mcp.Description("Only list one category")),
		),
		s.handleListApplications,
	)

	// scan_applications
	s.mcp.AddTool(
		mcp.NewTool("scan_applications",
			mcp.WithDescription("Scan the system's desktop entry directories for installed applications. Does not modify the config."),
			mcp.WithBoolean("by_category", mcp.Description("Group results by taxonomy bucket")),
		),
		s.handleScanApplications,
	)

	// launch_application
	s.mcp.AddTool(
		mcp.NewTool("launch_application",
			mcp.WithDescription("Validate and launch an application as a detached process. Give either a raw command or the name of a configured application."),
			mcp.WithString("command", mcp.Description("Raw command to launch")),
			mcp.WithString("name", mcp.Description("Configured application name")),
			mcp.WithString("category", mcp.Description("Category to look the name up in")),
		),
		s.handleLaunchApplication,
	)

	// sync_applications
	s.mcp.AddTool(
		mcp.NewTool("sync_applications",
			mcp.WithDescription("Import newly installed applications into the config and remove entries whose executables no longer resolve"),
			mcp.WithBoolean("buckets", mcp.Description("Import into taxonomy buckets instead of raw entry categories")),
			mcp.WithBoolean("no_clean", mcp.Description("Skip the stale-application cleanup pass")),
		),
		s.handleSyncApplications,
	)

	// add_application
	s.mcp.AddTool(
		mcp.NewTool("add_application",
			mcp.WithDescription("Add an application to a config category"),
			mcp.WithString("category", mcp.Description("Category to add to"), mcp.Required()),
			mcp.WithString("name", mcp.Description("Application name"), mcp.Required()),
			mcp.WithString("command", mcp.Description("Launch command"), mcp.Required()),
			mcp.WithString("icon", mcp.Description("Icon name or path")),
		),
		s.handleAddApplication,
	)

	// remove_application
	s.mcp.AddTool(
		mcp.NewTool("remove_application",
			mcp.WithDescription("Remove an application from a config category by name"),
			mcp.WithString("category", mcp.Description("Category to remove from"), mcp.Required()),
			mcp.WithString("name", mcp.Description("Application name"), mcp.Required()),
		),
		s.handleRemoveApplication,
	)
}

// resultToText serializes v to YAML for an MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func (s *mcpServer) handleListApplications(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	category := stringParam(params, "category", "")

	if category != "" {
		apps, ok := s.store.Category(category)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("category %q not found", category)), nil
		}
		return mcp.NewToolResultText(resultToText(map[string][]desktop.ApplicationRecord{category: apps})), nil
	}
	return mcp.NewToolResultText(resultToText(s.store.Applications())), nil
}

func (s *mcpServer) handleScanApplications(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if boolParam(params, "by_category", false) {
		return mcp.NewToolResultText(resultToText(s.scanner.ScanByCategory())), nil
	}
	return mcp.NewToolResultText(resultToText(s.scanner.Scan())), nil
}

func (s *mcpServer) handleLaunchApplication(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	command := stringParam(params, "command", "")
	name := stringParam(params, "name", "")
	category := stringParam(params, "category", "")

	if command == "" && name != "" {
		resolved, err := resolveAppCommand(s.store, name, category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		command = resolved
	}
	if command == "" {
		return mcp.NewToolResultError("specify a command or a configured application name"), nil
	}

	if !launcher.LaunchWithValidation(command) {
		return mcp.NewToolResultError(fmt.Sprintf("launch failed: %s", command)), nil
	}
	return mcp.NewToolResultText(resultToText(LaunchResult{OK: true, Command: command})), nil
}

func (s *mcpServer) handleSyncApplications(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	buckets := boolParam(params, "buckets", false)
	noClean := boolParam(params, "no_clean", false)

	var res reconcile.Result
	if buckets {
		res.Imported = s.rec.ImportByBucket()
	} else {
		res.Imported = s.rec.ImportByCategory()
	}
	if !noClean {
		res.Removed = s.rec.Clean()
	}
	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *mcpServer) handleAddApplication(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	category := stringParam(params, "category", "")
	name := stringParam(params, "name", "")
	command := stringParam(params, "command", "")
	icon := stringParam(params, "icon", "")

	if category == "" || name == "" || command == "" {
		return mcp.NewToolResultError("category, name, and command are required"), nil
	}

	added := s.store.AddApplication(category, desktop.ApplicationRecord{
		Name: name,
		Cmd:  command,
		Icon: icon,
	})
	return mcp.NewToolResultText(resultToText(AppResult{OK: true, Action: "add", Category: category, Name: name, Added: &added})), nil
}

func (s *mcpServer) handleRemoveApplication(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	category := stringParam(params, "category", "")
	name := stringParam(params, "name", "")

	if category == "" || name == "" {
		return mcp.NewToolResultError("category and name are required"), nil
	}

	s.store.RemoveApplication(category, name)
	return mcp.NewToolResultText(resultToText(AppResult{OK: true, Action: "remove", Category: category, Name: name})), nil
}
