package widget

// LayoutKind tags the layout variant a container widget declared.
type LayoutKind string

const (
	LayoutRow    LayoutKind = "row"
	LayoutColumn LayoutKind = "column"
	LayoutStack  LayoutKind = "stack"
	LayoutWrap   LayoutKind = "wrap"
	LayoutFlex   LayoutKind = "flex"
)

// MainAxisAlignment specifies how children are placed along the main axis.
type MainAxisAlignment string

const (
	MainStart        MainAxisAlignment = "start"
	MainCenter       MainAxisAlignment = "center"
	MainEnd          MainAxisAlignment = "end"
	MainSpaceBetween MainAxisAlignment = "space-between"
)

// CrossAxisAlignment specifies how children are placed across the main axis.
type CrossAxisAlignment string

const (
	CrossStart   CrossAxisAlignment = "start"
	CrossCenter  CrossAxisAlignment = "center"
	CrossEnd     CrossAxisAlignment = "end"
	CrossStretch CrossAxisAlignment = "stretch"
)

// LayoutInfo is the layout hint attached to a container widget.
type LayoutInfo struct {
	Kind      LayoutKind         `yaml:"kind" json:"kind" validate:"required,oneof=row column stack wrap flex"`
	MainAxis  MainAxisAlignment  `yaml:"main_axis,omitempty" json:"mainAxis,omitempty" validate:"omitempty,oneof=start center end space-between"`
	CrossAxis CrossAxisAlignment `yaml:"cross_axis,omitempty" json:"crossAxis,omitempty" validate:"omitempty,oneof=start center end stretch"`
	Spacing   float64            `yaml:"spacing,omitempty" json:"spacing,omitempty" validate:"omitempty,min=0"`
	Padding   *EdgeInsets        `yaml:"padding,omitempty" json:"padding,omitempty"`
	Width     *float64           `yaml:"width,omitempty" json:"width,omitempty"`
	Height    *float64           `yaml:"height,omitempty" json:"height,omitempty"`
}

// PositionInfo holds absolute placement hints for a stack child. All fields
// are optional; left+right (or top+bottom) may both be present, in which case
// the left/top edge wins.
type PositionInfo struct {
	Left   *float64 `yaml:"left,omitempty" json:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty" json:"right,omitempty"`
	Top    *float64 `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Width  *float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty" json:"height,omitempty"`
}
