// resources.go implements MCP resource handlers for rule file access.
//
// MCP resources provide read-only access via URI schemes, enabling LLM
// clients to reference ownership data without using tools. This is useful
// for context loading where the LLM needs the rules but isn't performing
// a query.
//
// Design: Resource URIs follow the pattern codeowner://rules for the raw
// rule file and codeowner://owners/{owner} for an owner's pattern set.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/codeowner/extension"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyOwner indicates a missing owner in a resource URI.
	ErrEmptyOwner = errors.New("empty owner")
)

// registerResources adds URI-based resource access for rules and owners.
func registerResources(s *server.MCPServer, extCtx extension.Context) {
	s.AddResource(
		mcp.NewResource(
			"codeowner://rules",
			"Rule file",
			mcp.WithResourceDescription("Raw CODEOWNERS rule file content"),
			mcp.WithMIMEType("text/plain"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return readRulesResource(extCtx, req.Params.URI)
		},
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"codeowner://owners/{owner}",
			"Owner pattern set",
			mcp.WithTemplateDescription("Include/exclude patterns for an owner"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return readOwnerResource(extCtx, req.Params.URI)
		},
	)
}

// readRulesResource returns the raw rule file content.
func readRulesResource(extCtx extension.Context, uri string) ([]mcp.ResourceContents, error) {
	content, err := extCtx.Workspace().ReadRules()
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     content,
		},
	}, nil
}

// readOwnerResource returns an owner's pattern set as JSON.
func readOwnerResource(extCtx extension.Context, uri string) ([]mcp.ResourceContents, error) {
	owner, err := parseOwnerURI(uri)
	if err != nil {
		return nil, err
	}

	set := extCtx.Engine().Snapshot().PatternsForOwner(owner)
	data, err := json.MarshalIndent(map[string]any{
		"owner":   owner,
		"include": set.Include,
		"exclude": set.Exclude,
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// parseOwnerURI extracts the owner from a codeowner://owners/{owner} URI.
func parseOwnerURI(uri string) (string, error) {
	const prefix = "codeowner://owners/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	owner := strings.TrimPrefix(uri, prefix)
	if owner == "" {
		return "", ErrEmptyOwner
	}
	return owner, nil
}
