// Package tools registers the colorfmt conversions as MCP tools.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func boolPtr(b bool) *bool { return &b }

// conversion builds the metadata shared by every conversion tool.
func conversion(name, title, description string) *mcp.Tool {
	return &mcp.Tool{
		Name:        name,
		Description: description,
		Annotations: &mcp.ToolAnnotations{
			Title:         title,
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(false),
		},
	}
}

// Register adds all color tools to the server.
func Register(server *mcp.Server) {
	mcp.AddTool(server, conversion("hex_to_rgba", "Hex to RGB(A)",
		"Convert a hex color (#rgb, #rgba, #rrggbb, #rrggbbaa) to rgb()/rgba() notation. An explicit alpha overrides the one embedded in the hex string."),
		handleHexToRGBA)

	mcp.AddTool(server, conversion("hex_to_hsla", "Hex to HSL(A)",
		"Convert a hex color to hsl()/hsla() notation with whole-number hue, saturation and lightness."),
		handleHexToHSLA)

	mcp.AddTool(server, conversion("rgba_to_hex", "RGB(A) to Hex",
		"Convert rgb()/rgba() notation to #rrggbb or #rrggbbaa."),
		handleRGBAToHex)

	mcp.AddTool(server, conversion("rgba_to_hsla", "RGB(A) to HSL(A)",
		"Convert rgb()/rgba() notation to hsl()/hsla(). When red is the largest channel the hue may be negative; use convert_color for a normalized hue."),
		handleRGBAToHSLA)

	mcp.AddTool(server, conversion("hsla_to_rgba", "HSL(A) to RGB(A)",
		"Convert hsl()/hsla() notation to rgb()/rgba() using the legacy hue scale (hue divided by 100). Use convert_color for CSS degree hues."),
		handleHSLAToRGBA)

	mcp.AddTool(server, conversion("hsla_to_hex", "HSL(A) to Hex",
		"Convert hsl()/hsla() notation with a hue in degrees to #rrggbb or #rrggbbaa. An alpha of 0 is omitted."),
		handleHSLAToHex)

	mcp.AddTool(server, conversion("convert_color", "Convert Color",
		"Convert a color in any notation (hex, rgb(), hsl() or a CSS color name) to hex, rgb or hsl."),
		handleConvert)

	mcp.AddTool(server, conversion("list_color_names", "List Color Names",
		"List the CSS color names accepted by convert_color."),
		handleListNames)
}
