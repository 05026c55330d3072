package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gogpu/colorfmt/internal/middleware"
)

// connect wires a server with all tools to an in-memory client session.
func connect(t *testing.T, logger *slog.Logger) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "colorconv-mcp", Version: "test"}, nil)
	if logger != nil {
		server.AddReceivingMiddleware(middleware.LoggingMiddleware(logger))
	}
	Register(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server.Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client.Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func call(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s) error = %v", name, err)
	}
	if len(res.Content) == 0 {
		t.Fatalf("CallTool(%s) returned no content", name)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s) content is %T, want *mcp.TextContent", name, res.Content[0])
	}
	return res, text.Text
}

func TestRegisterListsTools(t *testing.T) {
	cs := connect(t, nil)

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	got := map[string]bool{}
	for _, tool := range res.Tools {
		got[tool.Name] = true
		if tool.Annotations == nil || !tool.Annotations.ReadOnlyHint {
			t.Errorf("tool %s should be annotated read-only", tool.Name)
		}
	}
	for _, name := range []string{
		"hex_to_rgba", "hex_to_hsla", "rgba_to_hex", "rgba_to_hsla",
		"hsla_to_rgba", "hsla_to_hex", "convert_color", "list_color_names",
	} {
		if !got[name] {
			t.Errorf("tool %s not registered", name)
		}
	}
}

func TestConversionTools(t *testing.T) {
	cs := connect(t, nil)

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{"hex_to_rgba", map[string]any{"hex": "#3498db"}, "rgb(52, 152, 219)"},
		{"hex_to_rgba", map[string]any{"hex": "#3498db", "alpha": 0.5}, "rgba(52, 152, 219, 0.5)"},
		{"hex_to_hsla", map[string]any{"hex": "#00ff00"}, "hsl(120, 100%, 50%)"},
		{"rgba_to_hex", map[string]any{"rgba": "rgba(0, 0, 0, 0.5)"}, "#00000080"},
		{"rgba_to_hsla", map[string]any{"rgba": "rgb(255, 128, 0)"}, "hsl(-30, 100%, 50%)"},
		{"hsla_to_rgba", map[string]any{"hsla": "hsl(0, 0%, 50%)"}, "rgb(0.5, 0.5, 0.5)"},
		{"hsla_to_hex", map[string]any{"hsla": "hsl(0, 100%, 50%)"}, "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			res, text := call(t, cs, tt.tool, tt.args)
			if res.IsError {
				t.Fatalf("%s returned a tool error: %s", tt.tool, text)
			}
			var out ColorOutput
			if err := json.Unmarshal([]byte(text), &out); err != nil {
				t.Fatalf("unmarshal %q: %v", text, err)
			}
			if out.Color != tt.want {
				t.Errorf("%s(%v) = %q, want %q", tt.tool, tt.args, out.Color, tt.want)
			}
		})
	}
}

func TestConvertTool(t *testing.T) {
	cs := connect(t, nil)

	res, text := call(t, cs, "convert_color", map[string]any{"color": "cornflowerblue", "to": "hsl"})
	if res.IsError {
		t.Fatalf("convert_color returned a tool error: %s", text)
	}
	var out ConvertOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("unmarshal %q: %v", text, err)
	}
	if out.From != "hex" {
		t.Errorf("From = %q, want hex", out.From)
	}
	if !strings.HasPrefix(out.Color, "hsl(") {
		t.Errorf("Color = %q, want hsl notation", out.Color)
	}
}

func TestToolErrors(t *testing.T) {
	cs := connect(t, nil)

	tests := []struct {
		tool string
		args map[string]any
	}{
		{"hex_to_rgba", map[string]any{"hex": "#12345"}},
		{"rgba_to_hex", map[string]any{"rgba": "rgb(1, 2)"}},
		{"convert_color", map[string]any{"color": "#fff", "to": "cmyk"}},
		{"convert_color", map[string]any{"color": "banana", "to": "hex"}},
	}
	for _, tt := range tests {
		res, text := call(t, cs, tt.tool, tt.args)
		if !res.IsError {
			t.Errorf("%s(%v) should report a tool error, got %q", tt.tool, tt.args, text)
		}
	}
}

func TestListNamesTool(t *testing.T) {
	cs := connect(t, nil)

	_, text := call(t, cs, "list_color_names", map[string]any{})
	var out ListNamesOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	found := false
	for _, n := range out.Names {
		if n == "red" {
			found = true
		}
	}
	if !found {
		t.Error("list_color_names does not include red")
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cs := connect(t, logger)

	call(t, cs, "hex_to_rgba", map[string]any{"hex": "#fff"})
	call(t, cs, "hex_to_rgba", map[string]any{"hex": "#ff"})

	out := buf.String()
	if !strings.Contains(out, "method=tools/call") {
		t.Errorf("expected a tools/call record, got: %s", out)
	}
	if !strings.Contains(out, "tool returned an error") {
		t.Errorf("expected the failed call to be logged, got: %s", out)
	}
}
