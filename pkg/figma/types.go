package figma

import "strings"

// Version is the current release of figma-codegen.
const Version = "0.3.0"

// Node type constants as returned by the Figma REST API.
const (
	NodeDocument     = "DOCUMENT"
	NodeCanvas       = "CANVAS"
	NodeFrame        = "FRAME"
	NodeGroup        = "GROUP"
	NodeVector       = "VECTOR"
	NodeBooleanOp    = "BOOLEAN_OPERATION"
	NodeStar         = "STAR"
	NodeLine         = "LINE"
	NodeEllipse      = "ELLIPSE"
	NodePolygon      = "REGULAR_POLYGON"
	NodeRectangle    = "RECTANGLE"
	NodeText         = "TEXT"
	NodeSlice        = "SLICE"
	NodeComponent    = "COMPONENT"
	NodeComponentSet = "COMPONENT_SET"
	NodeInstance     = "INSTANCE"
)

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, document structure, named components, published
// styles, and schema version information.
type FileResponse struct {
	Name          string               `json:"name"`
	LastModified  string               `json:"lastModified"`
	ThumbnailURL  string               `json:"thumbnailUrl"`
	Version       string               `json:"version"`
	Document      Node                 `json:"document"`
	Components    map[string]Component `json:"components"`
	Styles        map[string]Style     `json:"styles"`
	SchemaVersion int                  `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and optional component/style information.
// This is the structure returned for each requested node in a NodesResponse.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
	Styles     map[string]Style     `json:"styles,omitempty"`
}

// Component represents a Figma component definition with its metadata.
// Components are reusable design elements that can be instantiated throughout the file.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ImagesResponse represents the response from the Figma images (render) API endpoint.
// It maps node IDs to temporary download URLs for the rendered images.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each with their own
// properties such as fills, strokes, effects, layout settings, and children nodes.
//
// Fields the API omits when they carry their default (visible=true, opacity=1)
// are pointers so that absence is distinguishable from an explicit zero.
type Node struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Type                string            `json:"type"`
	Children            []Node            `json:"children,omitempty"`
	BackgroundColor     *Color            `json:"backgroundColor,omitempty"`
	Fills               []Paint           `json:"fills,omitempty"`
	Strokes             []Paint           `json:"strokes,omitempty"`
	StrokeWeight        float64           `json:"strokeWeight,omitempty"`
	CornerRadius        float64           `json:"cornerRadius,omitempty"`
	Opacity             *float64          `json:"opacity,omitempty"`
	Effects             []Effect          `json:"effects,omitempty"`
	Characters          string            `json:"characters,omitempty"`
	Style               *TypeStyle        `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle        `json:"absoluteBoundingBox,omitempty"`
	Constraints         *LayoutConstraint `json:"constraints,omitempty"`
	LayoutMode          string            `json:"layoutMode,omitempty"`
	PaddingLeft         float64           `json:"paddingLeft,omitempty"`
	PaddingRight        float64           `json:"paddingRight,omitempty"`
	PaddingTop          float64           `json:"paddingTop,omitempty"`
	PaddingBottom       float64           `json:"paddingBottom,omitempty"`
	ItemSpacing         float64           `json:"itemSpacing,omitempty"`
	ExportSettings      []ExportSetting   `json:"exportSettings,omitempty"`
}

// interactionKeywords mark a node as an interactive element when present in its name.
var interactionKeywords = []string{"button", "link", "input", "click"}

// headingKeywords mark a text node as a heading when present in its name.
var headingKeywords = []string{"title", "heading", "header"}

// headingFontSize is the font size above which a text node counts as a heading
// regardless of its name.
const headingFontSize = 20

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool { return n.Type == NodeText }

// IsImage reports whether any of the node's fills is an image paint.
func (n *Node) IsImage() bool {
	for _, fill := range n.Fills {
		if fill.Type == "IMAGE" {
			return true
		}
	}
	return false
}

// IsInteractive reports whether the node's name names an interactive element
// (button, link, input, click), matched case-insensitively.
func (n *Node) IsInteractive() bool {
	name := strings.ToLower(n.Name)
	for _, kw := range interactionKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// IsHeading reports whether a text node represents a heading: its name contains
// a heading keyword, or its font size exceeds headingFontSize.
func (n *Node) IsHeading() bool {
	if !n.IsText() {
		return false
	}
	name := strings.ToLower(n.Name)
	for _, kw := range headingKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return n.Style != nil && n.Style.FontSize > headingFontSize
}

// FindByID returns the first node in a pre-order walk of the subtree rooted at n
// whose ID matches id, or nil when no such node exists.
func (n *Node) FindByID(id string) *Node {
	if n.ID == id {
		return n
	}
	for i := range n.Children {
		if found := n.Children[i].FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, IMAGE, etc.), visibility,
// opacity, and color information. Visible and Opacity are omitted by the API
// when they hold their defaults (true and 1).
type Paint struct {
	Type      string   `json:"type"`
	Visible   *bool    `json:"visible,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty"`
	Color     *Color   `json:"color,omitempty"`
	ImageRef  string   `json:"imageRef,omitempty"`
	ScaleMode string   `json:"scaleMode,omitempty"`
}

// IsVisible reports the paint's effective visibility (absent means visible).
func (p *Paint) IsVisible() bool { return p.Visible == nil || *p.Visible }

// Effect represents a visual effect applied to a Figma node such as drop shadows,
// inner shadows, or blur effects. It includes positioning (offset), blur radius,
// spread, color, and blend mode settings.
type Effect struct {
	Type      string  `json:"type"`
	Visible   *bool   `json:"visible,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// IsVisible reports the effect's effective visibility (absent means visible).
func (e *Effect) IsVisible() bool { return e.Visible == nil || *e.Visible }

// Vector represents a 2D coordinate or offset with X and Y values.
// Used for positioning effects like shadows and other spatial properties.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents comprehensive text styling properties from Figma.
// It includes font family, weight, size, line height, letter spacing, text
// alignment, and the fills that color the glyphs.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LineHeightPercent   float64 `json:"lineHeightPercent"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	TextAlignVertical   string  `json:"textAlignVertical"`
	Fills               []Paint `json:"fills,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutConstraint defines how a node's position and size behave when its parent is resized.
// Constraints can be set for both vertical (TOP, BOTTOM, CENTER, etc.) and horizontal directions.
type LayoutConstraint struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
}

// ExportSetting describes an export preset a designer attached to a node.
type ExportSetting struct {
	Suffix string `json:"suffix"`
	Format string `json:"format"`
}
