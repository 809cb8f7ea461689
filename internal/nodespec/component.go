package nodespec

// PropertyKind classifies a switchable component property.
type PropertyKind string

const (
	PropertyBoolean      PropertyKind = "BOOLEAN"
	PropertyText         PropertyKind = "TEXT"
	PropertyVariant      PropertyKind = "VARIANT"
	PropertyInstanceSwap PropertyKind = "INSTANCE_SWAP"
)

// ComponentProperty is one switchable property exposed on a component.
type ComponentProperty struct {
	Name    string       `json:"name"`
	Kind    PropertyKind `json:"kind"`
	Default string       `json:"default,omitempty"`
	Options []string     `json:"options,omitempty"`
}

// ComponentVariant is one named configuration of a component: the
// property values that select it plus its lowered node tree.
type ComponentVariant struct {
	Name   string            `json:"name"`
	Values map[string]string `json:"values,omitempty"`
	Node   *Node             `json:"node"`
}

// ComponentDefinition wraps a reusable widget and its synthesized variants
// into a publishable component.
type ComponentDefinition struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	SourceType  string              `json:"sourceType,omitempty"`
	Variants    []ComponentVariant  `json:"variants"`
	Properties  []ComponentProperty `json:"properties,omitempty"`
}

// BaseNode returns the node tree of the first (canonical) variant.
func (c *ComponentDefinition) BaseNode() *Node {
	if c == nil || len(c.Variants) == 0 {
		return nil
	}
	return c.Variants[0].Node
}
