package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/proartlab/proart/internal/config"
	"github.com/proartlab/proart/internal/mcp"
	"github.com/proartlab/proart/internal/report"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI agent integration",
	Long: `Start an MCP (Model Context Protocol) server for AI agent integration.

This allows AI agents to query survey statistics through MCP tools
instead of spawning CLI commands. The server loads one snapshot of the
database at startup; imports done while it runs are not visible until
it is restarted.

Available Tools:
  proart_companies         List companies with respondent counts
  proart_question_average  Average answer for one question
  proart_section_average   Average across a section's questions
  proart_distribution      Answer distribution for one question
  proart_section_summary   Section summary for one company

Examples:
  proart serve --mcp                                # Start with all tools
  proart serve --mcp --tools companies,distribution # Specific tools only
  proart serve --mcp --timeout 30m                  # Auto-stop after 30 minutes
  proart serve --status                             # Check if server is running
  proart serve --stop                               # Stop running server
  proart serve --list-tools                         # Show available tools`,
	RunE: runServe,
}

var (
	serveMCP       bool
	serveTools     string
	serveTimeout   string
	serveStatus    bool
	serveStop      bool
	serveListTools bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "Start MCP server (stdio transport)")
	serveCmd.Flags().StringVar(&serveTools, "tools", "", "Comma-separated list of tools to expose (default: all)")
	serveCmd.Flags().StringVar(&serveTimeout, "timeout", "30m", "Inactivity timeout (0 for no timeout)")
	serveCmd.Flags().BoolVar(&serveStatus, "status", false, "Check if server is running")
	serveCmd.Flags().BoolVar(&serveStop, "stop", false, "Stop running server")
	serveCmd.Flags().BoolVar(&serveListTools, "list-tools", false, "List available tools")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveListTools {
		fmt.Println("Available MCP tools:")
		fmt.Println()
		fmt.Println("  proart_companies         List companies with respondent counts")
		fmt.Println("  proart_question_average  Average answer for one question")
		fmt.Println("  proart_section_average   Average across a section's questions")
		fmt.Println("  proart_distribution      Answer distribution for one question")
		fmt.Println("  proart_section_summary   Section summary for one company")
		return nil
	}

	if serveStatus {
		return checkServerStatus()
	}

	if serveStop {
		return stopServer()
	}

	if !serveMCP {
		return fmt.Errorf("use --mcp to start the MCP server, or --help for usage")
	}

	timeout, err := parseDuration(serveTimeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	var tools []string
	if serveTools != "" {
		for _, t := range strings.Split(serveTools, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				tools = append(tools, normalizeToolName(t))
			}
		}
	}

	srv, closeFn, err := openMCPServer(mcp.Config{Tools: tools, Timeout: timeout})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer closeFn()

	if err := writePIDFile(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write PID file: %v\n", err)
	}
	defer removePIDFile()

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintf(os.Stderr, "\nproart serve: shutting down\n")
		closeFn()
		removePIDFile()
		os.Exit(0)
	}()

	// Log startup info to stderr (stdout is for MCP protocol)
	fmt.Fprintf(os.Stderr, "proart serve: starting MCP server\n")
	fmt.Fprintf(os.Stderr, "proart serve: tools: %v\n", srv.ListTools())
	if timeout > 0 {
		fmt.Fprintf(os.Stderr, "proart serve: timeout: %v\n", timeout)
	}

	return srv.ServeStdio()
}

// openMCPServer loads the snapshot and builds an MCP server over it.
// The returned close function releases the database.
func openMCPServer(mcpCfg mcp.Config) (*mcp.Server, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	engine, closeFn, err := openEngine(cfg)
	if err != nil {
		return nil, nil, err
	}

	g := report.NewGatherer(engine)
	g.SetThresholds(thresholdsOf(cfg))
	mcpCfg.Thresholds = thresholdsOf(cfg)

	srv, err := mcp.New(engine, g, mcpCfg)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return srv, closeFn, nil
}

// normalizeToolName allows shorthand (companies -> proart_companies).
func normalizeToolName(name string) string {
	if !strings.HasPrefix(name, "proart_") {
		return "proart_" + name
	}
	return name
}

func parseDuration(s string) (time.Duration, error) {
	if s == "0" || s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func getPIDFilePath() (string, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "serve.pid"), nil
}

func writePIDFile() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func removePIDFile() {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return
	}
	os.Remove(pidPath)
}

func checkServerStatus() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		fmt.Printf("Status: not running (no %s directory)\n", config.ConfigDirName)
		return nil
	}

	data, err := os.ReadFile(pidPath)
	if err != nil {
		fmt.Println("Status: not running")
		return nil
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		fmt.Println("Status: not running (stale PID file)")
		return nil
	}

	proc, err := os.FindProcess(pid)
	if err != nil || proc.Signal(syscall.Signal(0)) != nil {
		fmt.Println("Status: not running (stale PID file)")
		return nil
	}

	fmt.Printf("Status: running (pid %d)\n", pid)
	return nil
}

func stopServer() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return fmt.Errorf("no %s directory found", config.ConfigDirName)
	}

	data, err := os.ReadFile(pidPath)
	if err != nil {
		return fmt.Errorf("server not running")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		os.Remove(pidPath)
		return fmt.Errorf("stale PID file removed")
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		os.Remove(pidPath)
		return fmt.Errorf("server not running")
	}

	if err := proc.Signal(syscall.SIGTERM); err != nil {
		os.Remove(pidPath)
		return fmt.Errorf("server not running")
	}

	fmt.Printf("Stopped server (pid %d)\n", pid)
	return nil
}
