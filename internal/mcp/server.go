// Package mcp provides an MCP (Model Context Protocol) server for proart.
// This allows AI agents to query survey statistics and reports through
// MCP tools instead of CLI commands.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/proartlab/proart/internal/report"
	"github.com/proartlab/proart/internal/stats"
	"github.com/proartlab/proart/internal/survey"
)

// Server wraps the MCP server with proart-specific functionality
type Server struct {
	mcpServer    *server.MCPServer
	engine       *stats.Engine
	gatherer     *report.Gatherer
	thresholds   stats.Thresholds
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration
type Config struct {
	Tools      []string         // Which tools to expose (empty = all)
	Timeout    time.Duration    // Inactivity timeout (0 = no timeout)
	Thresholds stats.Thresholds // Classification cut-offs (zero value = defaults)
}

// DefaultTools is the default set of tools to expose
var DefaultTools = []string{
	"proart_companies", "proart_question_average", "proart_section_average",
	"proart_distribution", "proart_section_summary",
}

// AllTools lists all available tools
var AllTools = []string{
	"proart_companies", "proart_question_average", "proart_section_average",
	"proart_distribution", "proart_section_summary",
}

// New creates a new MCP server over a loaded engine. The caller keeps
// ownership of the underlying database; the server only reads the
// engine's snapshot.
func New(engine *stats.Engine, gatherer *report.Gatherer, cfg Config) (*Server, error) {
	mcpServer := server.NewMCPServer(
		"proart",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	thresholds := cfg.Thresholds
	if thresholds == (stats.Thresholds{}) {
		thresholds = stats.DefaultThresholds()
	}

	s := &Server{
		mcpServer:    mcpServer,
		engine:       engine,
		gatherer:     gatherer,
		thresholds:   thresholds,
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = DefaultTools
	}

	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			return nil, fmt.Errorf("failed to register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(name string) error {
	switch name {
	case "proart_companies":
		return s.registerCompaniesTool()
	case "proart_question_average":
		return s.registerQuestionAverageTool()
	case "proart_section_average":
		return s.registerSectionAverageTool()
	case "proart_distribution":
		return s.registerDistributionTool()
	case "proart_section_summary":
		return s.registerSectionSummaryTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	if s.timeout > 0 {
		go s.timeoutChecker()
	}

	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker monitors for inactivity and exits if timeout exceeded
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		elapsed := time.Since(s.lastActivity)
		s.mu.RUnlock()

		if elapsed > s.timeout {
			fmt.Fprintf(os.Stderr, "proart serve: timeout after %v of inactivity\n", s.timeout)
			os.Exit(0)
		}
	}
}

// updateActivity updates the last activity timestamp
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// ListTools returns the list of registered tools
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	return tools
}

// ToolSchema describes a tool's name, description, and parameters.
type ToolSchema struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Parameters  []ParameterSchema `json:"parameters" yaml:"parameters"`
}

// ParameterSchema describes a single tool parameter.
type ParameterSchema struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// toolSchemaRegistry holds the schema definitions for all tools.
// These mirror the mcp.NewTool() definitions in the register*Tool() functions.
var toolSchemaRegistry = map[string]ToolSchema{
	"proart_companies": {
		Name:        "proart_companies",
		Description: "List the companies in the survey pool with their respondent counts.",
		Parameters:  []ParameterSchema{},
	},
	"proart_question_average": {
		Name:        "proart_question_average",
		Description: "Average answer for one question on the 1-5 scale, over the whole pool or one company.",
		Parameters: []ParameterSchema{
			{Name: "question", Type: "string", Description: "Question id (e.g. m3)", Required: true},
			{Name: "company", Type: "string", Description: "Company id to restrict the pool to"},
		},
	},
	"proart_section_average": {
		Name:        "proart_section_average",
		Description: "Average across a section's questions on the 1-5 scale, with its classification.",
		Parameters: []ParameterSchema{
			{Name: "section", Type: "string", Description: "Section id (context, management, experience, health)", Required: true},
			{Name: "company", Type: "string", Description: "Company id to restrict the pool to"},
		},
	},
	"proart_distribution": {
		Name:        "proart_distribution",
		Description: "Answer distribution for one question: count and percentage per scale value 1-5.",
		Parameters: []ParameterSchema{
			{Name: "question", Type: "string", Description: "Question id (e.g. c1)", Required: true},
			{Name: "company", Type: "string", Description: "Company id to restrict the pool to"},
		},
	},
	"proart_section_summary": {
		Name:        "proart_section_summary",
		Description: "Section summary for one company: averages, classifications, and difference against the whole pool.",
		Parameters: []ParameterSchema{
			{Name: "company", Type: "string", Description: "Company id to report on", Required: true},
		},
	},
}

// GetToolSchemas returns schemas for all registered tools.
func (s *Server) GetToolSchemas() []ToolSchema {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schemas := make([]ToolSchema, 0, len(s.tools))
	for name := range s.tools {
		if schema, ok := toolSchemaRegistry[name]; ok {
			schemas = append(schemas, schema)
		}
	}
	return schemas
}

// CallTool dispatches a tool call by name with the given arguments.
// Returns the JSON result string or an error.
func (s *Server) CallTool(name string, args map[string]interface{}) (string, error) {
	s.mu.RLock()
	registered := s.tools[name]
	s.mu.RUnlock()

	if !registered {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	switch name {
	case "proart_companies":
		return s.executeCompanies()

	case "proart_question_average":
		question, _ := args["question"].(string)
		if question == "" {
			return "", fmt.Errorf("question parameter is required")
		}
		company, _ := args["company"].(string)
		return s.executeQuestionAverage(question, company)

	case "proart_section_average":
		section, _ := args["section"].(string)
		if section == "" {
			return "", fmt.Errorf("section parameter is required")
		}
		company, _ := args["company"].(string)
		return s.executeSectionAverage(section, company)

	case "proart_distribution":
		question, _ := args["question"].(string)
		if question == "" {
			return "", fmt.Errorf("question parameter is required")
		}
		company, _ := args["company"].(string)
		return s.executeDistribution(question, company)

	case "proart_section_summary":
		company, _ := args["company"].(string)
		if company == "" {
			return "", fmt.Errorf("company parameter is required")
		}
		return s.executeSectionSummary(company)

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// registerCompaniesTool registers the proart_companies tool
func (s *Server) registerCompaniesTool() error {
	tool := mcp.NewTool("proart_companies",
		mcp.WithDescription("List the companies in the survey pool with their respondent counts."),
	)

	s.mcpServer.AddTool(tool, s.handleCompanies)
	return nil
}

// registerQuestionAverageTool registers the proart_question_average tool
func (s *Server) registerQuestionAverageTool() error {
	tool := mcp.NewTool("proart_question_average",
		mcp.WithDescription("Average answer for one question on the 1-5 scale, over the whole pool or one company."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Question id (e.g. m3)"),
		),
		mcp.WithString("company",
			mcp.Description("Company id to restrict the pool to"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleQuestionAverage)
	return nil
}

// registerSectionAverageTool registers the proart_section_average tool
func (s *Server) registerSectionAverageTool() error {
	tool := mcp.NewTool("proart_section_average",
		mcp.WithDescription("Average across a section's questions on the 1-5 scale, with its classification."),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Section id (context, management, experience, health)"),
		),
		mcp.WithString("company",
			mcp.Description("Company id to restrict the pool to"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleSectionAverage)
	return nil
}

// registerDistributionTool registers the proart_distribution tool
func (s *Server) registerDistributionTool() error {
	tool := mcp.NewTool("proart_distribution",
		mcp.WithDescription("Answer distribution for one question: count and percentage per scale value 1-5."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Question id (e.g. c1)"),
		),
		mcp.WithString("company",
			mcp.Description("Company id to restrict the pool to"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleDistribution)
	return nil
}

// registerSectionSummaryTool registers the proart_section_summary tool
func (s *Server) registerSectionSummaryTool() error {
	tool := mcp.NewTool("proart_section_summary",
		mcp.WithDescription("Section summary for one company: averages, classifications, and difference against the whole pool."),
		mcp.WithString("company",
			mcp.Required(),
			mcp.Description("Company id to report on"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleSectionSummary)
	return nil
}

func (s *Server) handleCompanies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	result, err := s.executeCompanies()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleQuestionAverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	question, ok := args["question"].(string)
	if !ok || question == "" {
		return mcp.NewToolResultError("question parameter is required"), nil
	}
	company, _ := args["company"].(string)

	result, err := s.executeQuestionAverage(question, company)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleSectionAverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	section, ok := args["section"].(string)
	if !ok || section == "" {
		return mcp.NewToolResultError("section parameter is required"), nil
	}
	company, _ := args["company"].(string)

	result, err := s.executeSectionAverage(section, company)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleDistribution(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	question, ok := args["question"].(string)
	if !ok || question == "" {
		return mcp.NewToolResultError("question parameter is required"), nil
	}
	company, _ := args["company"].(string)

	result, err := s.executeDistribution(question, company)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleSectionSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	company, ok := args["company"].(string)
	if !ok || company == "" {
		return mcp.NewToolResultError("company parameter is required"), nil
	}

	result, err := s.executeSectionSummary(company)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) executeCompanies() (string, error) {
	companies := s.engine.Snapshot().Companies()

	rows := make([]map[string]interface{}, 0, len(companies))
	for _, c := range companies {
		n, err := s.engine.PoolSize(c.ID)
		if err != nil {
			return "", err
		}
		rows = append(rows, map[string]interface{}{
			"id":          c.ID,
			"name":        c.Name,
			"sector":      c.Sector,
			"employees":   c.Employees,
			"respondents": n,
		})
	}

	return toJSON(map[string]interface{}{
		"companies": rows,
		"total":     s.engine.Snapshot().Len(),
	})
}

func (s *Server) executeQuestionAverage(questionID, companyID string) (string, error) {
	q, err := s.engine.Schema().Question(questionID)
	if err != nil {
		return "", err
	}
	avg, err := s.engine.QuestionAverage(q.ID, companyID)
	if err != nil {
		return "", err
	}
	pool, err := s.engine.PoolSize(companyID)
	if err != nil {
		return "", err
	}

	result := map[string]interface{}{
		"question": q.ID,
		"text":     q.Text,
		"section":  q.SectionID,
		"average":  avg,
		"pool":     pool,
	}
	if companyID != "" {
		result["company"] = companyID
	}

	return toJSON(result)
}

func (s *Server) executeSectionAverage(sectionID, companyID string) (string, error) {
	sec, err := s.engine.Schema().Section(sectionID)
	if err != nil {
		return "", err
	}
	avg, err := s.engine.SectionAverage(sec.ID, companyID)
	if err != nil {
		return "", err
	}
	pool, err := s.engine.PoolSize(companyID)
	if err != nil {
		return "", err
	}

	result := map[string]interface{}{
		"section":        sec.ID,
		"name":           sec.Name,
		"inverted":       sec.Inverted,
		"average":        avg,
		"classification": stats.ClassifyWithThresholds(stats.Oriented(sec, avg), s.thresholds).Label(),
		"pool":           pool,
	}
	if companyID != "" {
		result["company"] = companyID
	}

	return toJSON(result)
}

func (s *Server) executeDistribution(questionID, companyID string) (string, error) {
	q, err := s.engine.Schema().Question(questionID)
	if err != nil {
		return "", err
	}
	buckets, err := s.engine.AnswerDistribution(q.ID, companyID)
	if err != nil {
		return "", err
	}

	rows := make([]map[string]interface{}, 0, survey.ScaleSize)
	for _, b := range buckets {
		rows = append(rows, map[string]interface{}{
			"value":      b.Value,
			"label":      s.engine.Schema().ScaleLabel(b.Value),
			"count":      b.Count,
			"percentage": b.Percentage,
		})
	}

	result := map[string]interface{}{
		"question":     q.ID,
		"text":         q.Text,
		"distribution": rows,
	}
	if companyID != "" {
		result["company"] = companyID
	}

	return toJSON(result)
}

func (s *Server) executeSectionSummary(companyID string) (string, error) {
	data, err := s.gatherer.CompanyReport(companyID)
	if err != nil {
		return "", err
	}

	rows := make([]map[string]interface{}, 0, len(data.Sections))
	for _, sec := range data.Sections {
		rows = append(rows, map[string]interface{}{
			"section":        sec.SectionID,
			"name":           sec.Name,
			"average":        sec.Average,
			"classification": sec.Band.Label(),
			"diff_vs_all":    sec.DiffVsAll,
		})
	}

	return toJSON(map[string]interface{}{
		"company": map[string]interface{}{
			"id":          data.Company.ID,
			"name":        data.Company.Name,
			"respondents": data.Company.Respondents,
		},
		"overall":  data.Overall,
		"sections": rows,
	})
}

func toJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
