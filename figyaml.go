// Package figyaml converts Figma design exports into YAML layout
// descriptions. It walks the exported node tree, classifies each node as
// text, icon, image or container using configurable heuristics, and emits
// one YAML file per top-level screen.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, yaml/, fs/).
package figyaml
