package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gogpu/colorfmt"
)

// HexInput is the input of hex_to_rgba and hex_to_hsla.
type HexInput struct {
	Hex   string   `json:"hex" jsonschema:"hex color such as #ff8800, #f80 or ff880080"`
	Alpha *float64 `json:"alpha,omitempty" jsonschema:"explicit alpha in [0, 1], overrides an embedded alpha"`
}

// RGBAInput is the input of rgba_to_hex and rgba_to_hsla.
type RGBAInput struct {
	RGBA  string   `json:"rgba" jsonschema:"rgb() or rgba() color such as rgba(255, 136, 0, 0.5)"`
	Alpha *float64 `json:"alpha,omitempty" jsonschema:"explicit alpha in [0, 1], overrides the parsed alpha"`
}

// HSLAInput is the input of hsla_to_rgba.
type HSLAInput struct {
	HSLA  string   `json:"hsla" jsonschema:"hsl() or hsla() color such as hsl(32, 100%, 50%)"`
	Alpha *float64 `json:"alpha,omitempty" jsonschema:"explicit alpha in [0, 1], overrides the parsed alpha"`
}

// HSLAToHexInput is the input of hsla_to_hex, which takes no explicit alpha.
type HSLAToHexInput struct {
	HSLA string `json:"hsla" jsonschema:"hsl() or hsla() color such as hsla(32, 100%, 50%, 0.5)"`
}

// ConvertInput is the input of convert_color.
type ConvertInput struct {
	Color string   `json:"color" jsonschema:"color in hex, rgb(), hsl() or a CSS color name"`
	To    string   `json:"to" jsonschema:"target format: hex, rgb or hsl"`
	Alpha *float64 `json:"alpha,omitempty" jsonschema:"explicit alpha in [0, 1]"`
}

// ColorOutput carries the converted color of the single-conversion tools.
type ColorOutput struct {
	Color string `json:"color"`
}

// ConvertOutput carries the converted color and the detected source format.
type ConvertOutput struct {
	Color string `json:"color"`
	From  string `json:"from"`
}

// ListNamesInput is the empty input of list_color_names.
type ListNamesInput struct{}

// ListNamesOutput lists the accepted color names in sorted order.
type ListNamesOutput struct {
	Names []string `json:"names"`
}

func alphaOpts(a *float64) []colorfmt.Option {
	if a == nil {
		return nil
	}
	return []colorfmt.Option{colorfmt.WithAlpha(*a)}
}

func result(s string, err error) (*mcp.CallToolResult, ColorOutput, error) {
	if err != nil {
		return nil, ColorOutput{}, err
	}
	return nil, ColorOutput{Color: s}, nil
}

func handleHexToRGBA(ctx context.Context, req *mcp.CallToolRequest, in HexInput) (*mcp.CallToolResult, ColorOutput, error) {
	return result(colorfmt.HexToRGBA(in.Hex, alphaOpts(in.Alpha)...))
}

func handleHexToHSLA(ctx context.Context, req *mcp.CallToolRequest, in HexInput) (*mcp.CallToolResult, ColorOutput, error) {
	return result(colorfmt.HexToHSLA(in.Hex, alphaOpts(in.Alpha)...))
}

func handleRGBAToHex(ctx context.Context, req *mcp.CallToolRequest, in RGBAInput) (*mcp.CallToolResult, ColorOutput, error) {
	return result(colorfmt.RGBAToHex(in.RGBA, alphaOpts(in.Alpha)...))
}

func handleRGBAToHSLA(ctx context.Context, req *mcp.CallToolRequest, in RGBAInput) (*mcp.CallToolResult, ColorOutput, error) {
	return result(colorfmt.RGBAToHSLA(in.RGBA, alphaOpts(in.Alpha)...))
}

func handleHSLAToRGBA(ctx context.Context, req *mcp.CallToolRequest, in HSLAInput) (*mcp.CallToolResult, ColorOutput, error) {
	return result(colorfmt.HSLAToRGBA(in.HSLA, alphaOpts(in.Alpha)...))
}

func handleHSLAToHex(ctx context.Context, req *mcp.CallToolRequest, in HSLAToHexInput) (*mcp.CallToolResult, ColorOutput, error) {
	return result(colorfmt.HSLAToHex(in.HSLA))
}

func handleConvert(ctx context.Context, req *mcp.CallToolRequest, in ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
	to, err := colorfmt.ParseFormat(in.To)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	from, err := colorfmt.Detect(in.Color)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	s, err := colorfmt.Convert(in.Color, to, alphaOpts(in.Alpha)...)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	return nil, ConvertOutput{Color: s, From: from.String()}, nil
}

func handleListNames(ctx context.Context, req *mcp.CallToolRequest, in ListNamesInput) (*mcp.CallToolResult, ListNamesOutput, error) {
	return nil, ListNamesOutput{Names: colorfmt.Names()}, nil
}
